// Package database - Index cho các collection của storefront (unique slug, unique key, compound).
package database

import (
	"context"
	"strings"

	"cellic_store/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateStoreIndexes tạo các index cho toàn bộ collections của storefront.
// Gọi một lần khi khởi động server, sau khi đã đăng ký collections.
func CreateStoreIndexes(ctx context.Context, db *mongo.Database) error {
	// users: email unique (sparse vì superuser từ env không có document)
	users := db.Collection(global.ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: slug unique — tra cứu chi tiết theo slug
	products := db.Collection(global.ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("product_slug_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: (category, createdAt) — filter danh sách công khai
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "category", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("product_category_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// categories: slug unique
	categories := db.Collection(global.ColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("category_slug_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// articles: slug unique — URL bài viết theo slug
	articles := db.Collection(global.ColNames.Articles)
	if _, err := articles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetName("article_slug_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// articles: (isPublished, publishedAt) — danh sách bài viết công khai
	if _, err := articles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "isPublished", Value: 1},
			{Key: "publishedAt", Value: -1},
		},
		Options: options.Index().SetName("article_published_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: orderNumber unique
	orders := db.Collection(global.ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderNumber", Value: 1}},
		Options: options.Index().SetName("order_number_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (status, createdAt) — lọc đơn hàng trong admin
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_status_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// comments: (productId, createdAt) — bình luận theo sản phẩm
	comments := db.Collection(global.ColNames.Comments)
	if _, err := comments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "productId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("comment_product_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// settings: key unique — upsert cấu hình theo key
	settings := db.Collection(global.ColNames.Settings)
	if _, err := settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("setting_key_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// contacts: createdAt — danh sách liên hệ mới nhất trước
	contacts := db.Collection(global.ColNames.Contacts)
	if _, err := contacts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("contact_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
