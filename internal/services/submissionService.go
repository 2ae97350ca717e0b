package services

import (
	"context"
	"fmt"
	"html"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dyingroomdev/memshaheb-sub001/internal/metrics"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
)

// SubmissionService defines the interface for reader submission business logic.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, submission models.Submission) (*models.Submission, error)
	GetSubmissions(ctx context.Context, status string) ([]models.Submission, error)
	GetSubmissionByID(ctx context.Context, submissionID primitive.ObjectID) (*models.Submission, error)
	UpdateSubmissionStatus(ctx context.Context, submissionID primitive.ObjectID, status string) (*models.Submission, error)
}

type submissionServiceImpl struct {
	submissionRepo repositories.SubmissionRepository
	emailService   EmailService
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(submissionRepo repositories.SubmissionRepository, emailService EmailService) SubmissionService {
	return &submissionServiceImpl{submissionRepo: submissionRepo, emailService: emailService}
}

func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, submission models.Submission) (*models.Submission, error) {
	log.Debug().Str("email", submission.Email).Str("title", submission.Title).Msg("Attempting to create submission")
	if submission.Name == "" || submission.Email == "" || submission.Content == "" {
		log.Warn().Msg("Name, email, and content are required for a submission")
		return nil, fmt.Errorf("name, email, and content are required")
	}

	submission.ID = primitive.NewObjectID()
	submission.Status = models.SubmissionPending
	now := time.Now().UTC()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	created, err := s.submissionRepo.Create(ctx, &submission)
	if err != nil {
		log.Error().Err(err).Str("email", submission.Email).Msg("Failed to insert submission")
		return nil, err
	}

	metrics.SubmissionsReceivedTotal.Inc()
	log.Info().Str("submissionID", created.ID.Hex()).Msg("Submission received")

	// Notify the editors out of band; a mail failure never blocks the reader.
	go s.notifyAdmin(*created)

	return created, nil
}

func (s *submissionServiceImpl) notifyAdmin(submission models.Submission) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	body := fmt.Sprintf(
		"<p>New submission from %s (%s)</p><h3>%s</h3><div>%s</div>",
		html.EscapeString(submission.Name), html.EscapeString(submission.Email),
		html.EscapeString(submission.Title),
		html.EscapeString(submission.Content),
	)
	if err := s.emailService.SendEmail(adminEmail, "New reader submission", body); err != nil {
		log.Error().Err(err).Str("submissionID", submission.ID.Hex()).Msg("Failed to send submission notification email")
	}
}

func (s *submissionServiceImpl) GetSubmissions(ctx context.Context, status string) ([]models.Submission, error) {
	log.Debug().Str("status", status).Msg("Attempting to list submissions")
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	submissions, err := s.submissionRepo.Find(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Error listing submissions")
		return nil, err
	}
	return submissions, nil
}

func (s *submissionServiceImpl) GetSubmissionByID(ctx context.Context, submissionID primitive.ObjectID) (*models.Submission, error) {
	submission, err := s.submissionRepo.FindOne(ctx, bson.M{"_id": submissionID})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("submissionID", submissionID.Hex()).Msg("Submission not found")
			return nil, fmt.Errorf("submission not found")
		}
		log.Error().Err(err).Str("submissionID", submissionID.Hex()).Msg("Error finding submission")
		return nil, fmt.Errorf("failed to retrieve submission")
	}
	return submission, nil
}

func (s *submissionServiceImpl) UpdateSubmissionStatus(ctx context.Context, submissionID primitive.ObjectID, status string) (*models.Submission, error) {
	log.Debug().Str("submissionID", submissionID.Hex()).Str("status", status).Msg("Attempting to update submission status")
	switch status {
	case models.SubmissionApproved, models.SubmissionRejected, models.SubmissionPending:
	default:
		log.Warn().Str("status", status).Msg("Unknown submission status")
		return nil, fmt.Errorf("unknown status")
	}

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	result, err := s.submissionRepo.UpdateOne(ctx, bson.M{"_id": submissionID}, update)
	if err != nil {
		log.Error().Err(err).Str("submissionID", submissionID.Hex()).Msg("Failed to update submission status")
		return nil, fmt.Errorf("failed to update submission")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("submissionID", submissionID.Hex()).Msg("Submission not found for status update")
		return nil, fmt.Errorf("submission not found")
	}

	updated, err := s.GetSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	log.Info().Str("submissionID", submissionID.Hex()).Str("status", status).Msg("Submission status updated successfully")
	return updated, nil
}
