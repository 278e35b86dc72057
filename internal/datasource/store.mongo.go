package datasource

import (
	"context"
	"fmt"

	basemodels "cellic_store/internal/api/base/models"
	basesvc "cellic_store/internal/api/base/service"
	"cellic_store/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore hiện thực EntityStore trên MongoDB, tái sử dụng base service
// (timestamps, pagination, convert lỗi mongo).
type MongoStore[T any] struct {
	service basesvc.BaseServiceMongo[T]
}

// NewMongoStore tạo store MongoDB cho một collection
func NewMongoStore[T any](collection *mongo.Collection) *MongoStore[T] {
	return &MongoStore[T]{
		service: basesvc.NewBaseServiceMongo[T](collection),
	}
}

// parseObjectID chuyển string id sang ObjectID, trả lỗi 400 khi không hợp lệ
func parseObjectID(id string) (primitive.ObjectID, error) {
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return primitive.ObjectIDFromHex(id)
}

func (s *MongoStore[T]) GetAll(ctx context.Context, filter map[string]interface{}, opts *ListOptions) ([]T, error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}

	findOpts := options.Find()
	if opts != nil {
		if len(opts.Sort) > 0 {
			sort := bson.D{}
			for field, dir := range opts.Sort {
				sort = append(sort, bson.E{Key: field, Value: dir})
			}
			findOpts.SetSort(sort)
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
		if opts.Skip > 0 {
			findOpts.SetSkip(opts.Skip)
		}
	}

	return s.service.Find(ctx, filter, findOpts)
}

func (s *MongoStore[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	objectID, err := parseObjectID(id)
	if err != nil {
		return zero, err
	}
	return s.service.FindOneById(ctx, objectID)
}

func (s *MongoStore[T]) Create(ctx context.Context, data T) (T, error) {
	return s.service.InsertOne(ctx, data)
}

func (s *MongoStore[T]) Update(ctx context.Context, id string, set map[string]interface{}) (T, error) {
	var zero T
	objectID, err := parseObjectID(id)
	if err != nil {
		return zero, err
	}
	return s.service.UpdateById(ctx, objectID, &basesvc.UpdateData{Set: set})
}

func (s *MongoStore[T]) Delete(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.service.DeleteById(ctx, objectID)
}

func (s *MongoStore[T]) List(ctx context.Context, filter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	return s.service.FindWithPagination(ctx, filter, page, limit, options.Find())
}

// Service trả về base service bên dưới cho các thao tác mongo chuyên biệt
// (upsert theo key, distinct, ...) khi backend là MongoDB.
func (s *MongoStore[T]) Service() basesvc.BaseServiceMongo[T] {
	return s.service
}
