package repositories

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *models.OTP) (*models.OTP, error)
	FindActive(ctx context.Context, userID primitive.ObjectID, otpCode string, purpose string) (*models.OTP, error)
	MarkAsUsed(ctx context.Context, otpID primitive.ObjectID) error
	DeleteExpired(ctx context.Context) error
}

type otpRepository struct {
	db database.Service
}

func NewOTPRepository(db database.Service) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) collection() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("otps")
}

func (r *otpRepository) observe(queryType string) (*prometheus.Timer, *string) {
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, "otp", status).Observe(v)
	}))
	return timer, &status
}

func (r *otpRepository) fail(queryType string, status *string) {
	*status = "error"
	utils.DBQueryErrorsTotal.WithLabelValues(queryType, "otp").Inc()
}

func (r *otpRepository) Create(ctx context.Context, otp *models.OTP) (*models.OTP, error) {
	timer, status := r.observe("create")
	defer timer.ObserveDuration()

	otp.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	otp.CreatedAt = now
	otp.UpdatedAt = now

	if _, err := r.collection().InsertOne(ctx, otp); err != nil {
		r.fail("create", status)
		return nil, err
	}
	return otp, nil
}

func (r *otpRepository) FindActive(ctx context.Context, userID primitive.ObjectID, otpCode string, purpose string) (*models.OTP, error) {
	timer, status := r.observe("findActive")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":    userID,
		"otp_code":   otpCode,
		"purpose":    purpose,
		"is_used":    false,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var otp models.OTP
	err := r.collection().FindOne(ctx, filter).Decode(&otp)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		r.fail("findActive", status)
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkAsUsed(ctx context.Context, otpID primitive.ObjectID) error {
	timer, status := r.observe("markAsUsed")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"is_used": true, "updated_at": time.Now().UTC()}}
	if _, err := r.collection().UpdateOne(ctx, bson.M{"_id": otpID}, update); err != nil {
		r.fail("markAsUsed", status)
		return err
	}
	return nil
}

func (r *otpRepository) DeleteExpired(ctx context.Context) error {
	timer, status := r.observe("deleteExpired")
	defer timer.ObserveDuration()

	filter := bson.M{"expires_at": bson.M{"$lt": time.Now()}, "is_used": false}
	if _, err := r.collection().DeleteMany(ctx, filter); err != nil {
		r.fail("deleteExpired", status)
		return err
	}
	return nil
}
