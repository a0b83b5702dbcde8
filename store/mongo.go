package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jooyongc/goldensnow360-dubai/config"
	"github.com/jooyongc/goldensnow360-dubai/models"
)

// NewMongo builds the repositories on the database opened by
// config.ConnectDB. Document ids are hex ObjectIDs stored as strings.
func NewMongo(cfg *config.Config, client *mongo.Client) *Store {
	return &Store{
		Driver:     config.DriverMongo,
		Properties: &mongoProperties{collection: config.GetCollection(cfg.Collection(config.CollectionProperties))},
		Messages:   &mongoMessages{collection: config.GetCollection(cfg.Collection(config.CollectionMessages))},
		Content: &mongoContent{
			hero:     config.GetCollection(cfg.Collection(config.CollectionHero)),
			about:    config.GetCollection(cfg.Collection(config.CollectionAbout)),
			contact:  config.GetCollection(cfg.Collection(config.CollectionContactInfo)),
			settings: config.GetCollection(cfg.Collection(config.CollectionSettings)),
		},
		Admins: &mongoAdmins{collection: config.GetCollection(cfg.Collection(config.CollectionAdmins))},
		close:  client.Disconnect,
	}
}

func newObjectID() string { return primitive.NewObjectID().Hex() }

func mongoErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

type mongoProperties struct {
	collection *mongo.Collection
}

func (r *mongoProperties) List(ctx context.Context) ([]models.Property, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, mongoErr("find properties", err)
	}
	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, mongoErr("decode properties", err)
	}
	return properties, nil
}

func (r *mongoProperties) Get(ctx context.Context, id models.PropertyID) (models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&property)
	if err != nil {
		return models.Property{}, mongoErr("find property", err)
	}
	return property, nil
}

func (r *mongoProperties) Create(ctx context.Context, p *models.Property) error {
	if p.ID == "" {
		p.ID = models.PropertyID(newObjectID())
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConflict
		}
		return mongoErr("insert property", err)
	}
	return nil
}

func (r *mongoProperties) Update(ctx context.Context, p *models.Property) error {
	p.UpdatedAt = time.Now()
	updateDoc := bson.M{
		"title":          p.Title,
		"title_ar":       p.TitleLocalized,
		"description":    p.Description,
		"location":       p.Location,
		"area":           p.Area,
		"lat":            p.Lat,
		"lng":            p.Lng,
		"price":          p.Price,
		"bedrooms":       p.Bedrooms,
		"bathrooms":      p.Bathrooms,
		"size_sqft":      p.SizeArea,
		"matterport_url": p.TourReference,
		"thumbnail":      p.Thumbnail,
		"property_type":  p.PropertyType,
		"status":         p.Status,
		"featured":       p.Featured,
		"updated_at":     p.UpdatedAt,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": p.ID.String()}, bson.M{"$set": updateDoc}, opts).Decode(p)
	if err != nil {
		return mongoErr("update property", err)
	}
	return nil
}

func (r *mongoProperties) Delete(ctx context.Context, id models.PropertyID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return mongoErr("delete property", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoProperties) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, mongoErr("count properties", err)
	}
	return n, nil
}

type mongoMessages struct {
	collection *mongo.Collection
}

func (r *mongoMessages) List(ctx context.Context) ([]models.ContactMessage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, mongoErr("find messages", err)
	}
	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, mongoErr("decode messages", err)
	}
	return messages, nil
}

func (r *mongoMessages) Create(ctx context.Context, m *models.ContactMessage) error {
	if m.ID == "" {
		m.ID = newObjectID()
	}
	m.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		return mongoErr("insert message", err)
	}
	return nil
}

func (r *mongoMessages) MarkRead(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return mongoErr("mark message read", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoMessages) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongoErr("delete message", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoMessages) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, mongoErr("count messages", err)
	}
	return n, nil
}

func (r *mongoMessages) CountUnread(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return 0, mongoErr("count unread messages", err)
	}
	return n, nil
}

// mongoContent keeps about stats embedded in the about document.
type mongoContent struct {
	hero     *mongo.Collection
	about    *mongo.Collection
	contact  *mongo.Collection
	settings *mongo.Collection
}

var upsert = options.Replace().SetUpsert(true)

func (r *mongoContent) Hero(ctx context.Context, page string) (models.HeroSection, error) {
	var hero models.HeroSection
	err := r.hero.FindOne(ctx, bson.M{"page": page, "is_active": true}).Decode(&hero)
	if err != nil {
		return models.HeroSection{}, mongoErr("find hero", err)
	}
	return hero, nil
}

func (r *mongoContent) SaveHero(ctx context.Context, h *models.HeroSection) error {
	if h.ID == "" {
		h.ID = newObjectID()
	}
	h.UpdatedAt = time.Now()
	if _, err := r.hero.ReplaceOne(ctx, bson.M{"_id": h.ID}, h, upsert); err != nil {
		return mongoErr("save hero", err)
	}
	return nil
}

func (r *mongoContent) About(ctx context.Context) (models.AboutContent, error) {
	var about models.AboutContent
	err := r.about.FindOne(ctx, bson.M{"is_active": true}).Decode(&about)
	if err != nil {
		return models.AboutContent{}, mongoErr("find about", err)
	}
	return about, nil
}

func (r *mongoContent) SaveAbout(ctx context.Context, a *models.AboutContent) error {
	if a.ID == "" {
		a.ID = newObjectID()
	}
	for i := range a.Stats {
		if a.Stats[i].ID == "" {
			a.Stats[i].ID = newObjectID()
		}
	}
	a.UpdatedAt = time.Now()
	if _, err := r.about.ReplaceOne(ctx, bson.M{"_id": a.ID}, a, upsert); err != nil {
		return mongoErr("save about", err)
	}
	return nil
}

func (r *mongoContent) ContactInfo(ctx context.Context) (models.ContactInfo, error) {
	var info models.ContactInfo
	err := r.contact.FindOne(ctx, bson.M{"is_active": true}).Decode(&info)
	if err != nil {
		return models.ContactInfo{}, mongoErr("find contact info", err)
	}
	return info, nil
}

func (r *mongoContent) SaveContactInfo(ctx context.Context, ci *models.ContactInfo) error {
	if ci.ID == "" {
		ci.ID = newObjectID()
	}
	ci.UpdatedAt = time.Now()
	if _, err := r.contact.ReplaceOne(ctx, bson.M{"_id": ci.ID}, ci, upsert); err != nil {
		return mongoErr("save contact info", err)
	}
	return nil
}

func (r *mongoContent) Settings(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	cursor, err := r.settings.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, mongoErr("find settings", err)
	}
	var rows []models.SiteSetting
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, mongoErr("decode settings", err)
	}
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *mongoContent) UpsertSettings(ctx context.Context, settings []models.SiteSetting) error {
	if len(settings) == 0 {
		return nil
	}
	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(settings))
	for _, s := range settings {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": s.Key}).
			SetUpdate(bson.M{"$set": bson.M{"value": s.Value, "type": s.Type, "updated_at": now}}).
			SetUpsert(true))
	}
	if _, err := r.settings.BulkWrite(ctx, writes); err != nil {
		return mongoErr("upsert settings", err)
	}
	return nil
}

type mongoAdmins struct {
	collection *mongo.Collection
}

func (r *mongoAdmins) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"username": strings.ToLower(username)}).Decode(&admin)
	if err != nil {
		return models.AdminUser{}, mongoErr("find admin", err)
	}
	return admin, nil
}

func (r *mongoAdmins) FindByID(ctx context.Context, id string) (models.AdminUser, error) {
	var admin models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return models.AdminUser{}, mongoErr("find admin", err)
	}
	return admin, nil
}

func (r *mongoAdmins) Create(ctx context.Context, a *models.AdminUser) error {
	a.Username = strings.ToLower(a.Username)
	count, err := r.collection.CountDocuments(ctx, bson.M{"username": a.Username})
	if err != nil {
		return mongoErr("check admin", err)
	}
	if count > 0 {
		return ErrConflict
	}
	if a.ID == "" {
		a.ID = newObjectID()
	}
	if a.Role == "" {
		a.Role = "admin"
	}
	a.CreatedAt = time.Now()
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return mongoErr("insert admin", err)
	}
	return nil
}
