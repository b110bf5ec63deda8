package repository

import (
	"context"
	"errors"
	"time"

	"filmpeek/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IUserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindById(userId string) (*model.User, error)
	CreateUser(name string, email string, hashedPassword string) (*model.User, error)
	AddFavorite(userId string, movieId int64) error
	RemoveFavorite(userId string, movieId int64) error
	GetFavorites(userId string) ([]int64, error)
	CreateWatchlist(userId string, name string) (*model.Watchlist, error)
	AddMovieToWatchlist(userId string, watchlistId string, movieId int64) error
	RemoveMovieFromWatchlist(userId string, watchlistId string, movieId int64) error
	DeleteWatchlist(userId string, watchlistId string) error
	GetWatchlist(userId string, watchlistId string) (*model.Watchlist, error)
	GetWatchlists(userId string) ([]model.Watchlist, error)
}

type UserRepository struct {
	mongodb *mongo.Database
}

func NewUserRepository(mongodb *mongo.Database) *UserRepository {
	return &UserRepository{mongodb: mongodb}
}

const userCollection = "users"

//------------------------------------------
//------------------------------------------

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.mongodb.
		Collection(userCollection).
		FindOne(context.TODO(), bson.D{{Key: "email", Value: email}}).
		Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindById(userId string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user model.User
	err = r.mongodb.
		Collection(userCollection).
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: id}}).
		Decode(&user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateUser(name string, email string, hashedPassword string) (*model.User, error) {
	now := time.Now().UTC()
	user := model.User{
		Name:           name,
		Email:          email,
		Password:       hashedPassword,
		FavoriteMovies: []int64{},
		WatchLists:     []model.Watchlist{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res, err := r.mongodb.
		Collection(userCollection).
		InsertOne(context.TODO(), user)
	if err != nil {
		return nil, err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) AddFavorite(userId string, movieId int64) error {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return ErrUserNotFound
	}

	// conditional update keeps the membership check and the append in
	// one round trip, two concurrent adds cannot both match
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "favoriteMovies", Value: bson.D{{Key: "$ne", Value: movieId}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "favoriteMovies", Value: movieId}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.explainNoMatch(id, ErrAlreadyFavorite)
	}
	return nil
}

func (r *UserRepository) RemoveFavorite(userId string, movieId int64) error {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return ErrUserNotFound
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "favoriteMovies", Value: movieId},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "favoriteMovies", Value: movieId}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.explainNoMatch(id, ErrNotFavorite)
	}
	return nil
}

func (r *UserRepository) GetFavorites(userId string) ([]int64, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var result struct {
		FavoriteMovies []int64 `bson:"favoriteMovies"`
	}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "favoriteMovies", Value: 1},
	})
	err = r.mongodb.
		Collection(userCollection).
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: id}}, opts).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if result.FavoriteMovies == nil {
		return []int64{}, nil
	}
	return result.FavoriteMovies, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateWatchlist(userId string, name string) (*model.Watchlist, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	watchlist := model.Watchlist{
		ID:     uuid.NewString(),
		Name:   name,
		Movies: []int64{},
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "watchLists.name", Value: bson.D{{Key: "$ne", Value: name}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "watchLists", Value: watchlist}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, r.explainNoMatch(id, ErrDuplicateWatchlistName)
	}
	return &watchlist, nil
}

func (r *UserRepository) AddMovieToWatchlist(userId string, watchlistId string, movieId int64) error {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return ErrUserNotFound
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "watchLists", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "id", Value: watchlistId},
			{Key: "movies", Value: bson.D{{Key: "$ne", Value: movieId}}},
		}}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "watchLists.$.movies", Value: movieId}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.explainNoWatchlistMatch(id, watchlistId, ErrAlreadyInWatchlist)
	}
	return nil
}

func (r *UserRepository) RemoveMovieFromWatchlist(userId string, watchlistId string, movieId int64) error {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return ErrUserNotFound
	}

	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "watchLists", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "id", Value: watchlistId},
			{Key: "movies", Value: movieId},
		}}}},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "watchLists.$.movies", Value: movieId}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.explainNoWatchlistMatch(id, watchlistId, ErrMovieNotInWatchlist)
	}
	return nil
}

func (r *UserRepository) DeleteWatchlist(userId string, watchlistId string) error {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return ErrUserNotFound
	}

	// membership lives in the filter, the unconditional updatedAt $set
	// would otherwise report a modification even when $pull removed nothing
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "watchLists.id", Value: watchlistId},
	}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "watchLists", Value: bson.D{{Key: "id", Value: watchlistId}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	}

	res, err := r.mongodb.
		Collection(userCollection).
		UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.explainNoMatch(id, ErrWatchlistNotFound)
	}
	return nil
}

func (r *UserRepository) GetWatchlist(userId string, watchlistId string) (*model.Watchlist, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var result struct {
		WatchLists []model.Watchlist `bson:"watchLists"`
	}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "watchLists.$", Value: 1},
	})
	err = r.mongodb.
		Collection(userCollection).
		FindOne(context.TODO(),
			bson.D{
				{Key: "_id", Value: id},
				{Key: "watchLists.id", Value: watchlistId},
			}, opts).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.explainNoMatch(id, ErrWatchlistNotFound)
		}
		return nil, err
	}
	if len(result.WatchLists) == 0 {
		return nil, ErrWatchlistNotFound
	}
	return &result.WatchLists[0], nil
}

func (r *UserRepository) GetWatchlists(userId string) ([]model.Watchlist, error) {
	id, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var result struct {
		WatchLists []model.Watchlist `bson:"watchLists"`
	}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "watchLists", Value: 1},
	})
	err = r.mongodb.
		Collection(userCollection).
		FindOne(context.TODO(), bson.D{{Key: "_id", Value: id}}, opts).
		Decode(&result)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if result.WatchLists == nil {
		return []model.Watchlist{}, nil
	}
	return result.WatchLists, nil
}

//------------------------------------------
//------------------------------------------

// explainNoMatch tells a missing user apart from a failed membership
// condition after a conditional update matched nothing.
func (r *UserRepository) explainNoMatch(id primitive.ObjectID, conditionErr error) error {
	count, err := r.mongodb.
		Collection(userCollection).
		CountDocuments(context.TODO(), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return conditionErr
}

// explainNoWatchlistMatch additionally tells a missing watchlist apart
// from a failed movie membership condition.
func (r *UserRepository) explainNoWatchlistMatch(id primitive.ObjectID, watchlistId string, conditionErr error) error {
	count, err := r.mongodb.
		Collection(userCollection).
		CountDocuments(context.TODO(), bson.D{
			{Key: "_id", Value: id},
			{Key: "watchLists.id", Value: watchlistId},
		})
	if err != nil {
		return err
	}
	if count > 0 {
		return conditionErr
	}
	return r.explainNoMatch(id, ErrWatchlistNotFound)
}
