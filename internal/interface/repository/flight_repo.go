package repository

import (
	"context"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight record repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("flight_records")

	// Index on pilotId+date for range queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "pilotId", Value: 1}, {Key: "date", Value: 1}},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	aircraftIndex := mongo.IndexModel{
		Keys: bson.M{"aircraftId": 1},
	}
	collection.Indexes().CreateOne(ctx, aircraftIndex)

	return &MongoFlightRepository{
		collection: collection,
	}
}

// Insert stores a new flight record and assigns its identity
func (r *MongoFlightRepository) Insert(ctx context.Context, record *entity.FlightRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// Update replaces an existing flight record; identity is immutable
func (r *MongoFlightRepository) Update(ctx context.Context, record *entity.FlightRecord) error {
	record.UpdatedAt = time.Now()

	updateDoc := bson.M{
		"pilotId":            record.PilotID,
		"date":               record.Date,
		"aircraftId":         record.AircraftID,
		"departureAerodrome": record.DepartureAerodrome,
		"arrivalAerodrome":   record.ArrivalAerodrome,
		"departureTime":      record.DepartureTime,
		"arrivalTime":        record.ArrivalTime,
		"totalTime":          record.TotalTime,
		"nightTime":          record.NightTime,
		"instrumentTime":     record.InstrumentTime,
		"crossCountryTime":   record.CrossCountryTime,
		"dualTime":           record.DualTime,
		"soloTime":           record.SoloTime,
		"picTime":            record.PICTime,
		"singleEngineTime":   record.SingleEngineTime,
		"multiEngineTime":    record.MultiEngineTime,
		"dayLandings":        record.DayLandings,
		"nightLandings":      record.NightLandings,
		"role":               record.Role,
		"condition":          record.Condition,
		"instructorName":     record.InstructorName,
		"remarks":            record.Remarks,
		"updatedAt":          record.UpdatedAt,
	}

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": record.ID},
		bson.M{"$set": updateDoc},
	)
	return err
}

// FindByID finds a flight record by id
func (r *MongoFlightRepository) FindByID(ctx context.Context, id string) (*entity.FlightRecord, error) {
	var record entity.FlightRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindByPilot returns a pilot's flights inside the date range, oldest first
func (r *MongoFlightRepository) FindByPilot(ctx context.Context, pilotID string, dateRange entity.DateRange, aircraftID uint) ([]*entity.FlightRecord, error) {
	filter := bson.M{"pilotId": pilotID}

	dateFilter := bson.M{}
	if !dateRange.From.IsZero() {
		dateFilter["$gte"] = dateRange.From
	}
	if !dateRange.To.IsZero() {
		dateFilter["$lte"] = dateRange.To
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}
	if aircraftID != 0 {
		filter["aircraftId"] = aircraftID
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "departureTime", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.FlightRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes a flight record by id
func (r *MongoFlightRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
