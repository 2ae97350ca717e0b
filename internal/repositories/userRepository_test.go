package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func TestUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	db := database.New()
	defer db.Close()

	userRepo := NewUserRepository(db)

	t.Run("Create and Get User", func(t *testing.T) {
		user := &models.User{
			ID:       primitive.NewObjectID(),
			Username: "testuser",
			Email:    "test@example.com",
			Password: "password",
			Role:     models.RoleReader,
		}

		createdUser, err := userRepo.Create(context.Background(), user)
		assert.NoError(t, err)
		assert.NotNil(t, createdUser)

		foundUser, err := userRepo.FindByID(context.Background(), createdUser.ID)
		assert.NoError(t, err)
		assert.NotNil(t, foundUser)
		assert.Equal(t, createdUser.ID, foundUser.ID)
		assert.Equal(t, models.RoleReader, foundUser.Role)

		_, err = userRepo.Delete(context.Background(), createdUser.ID)
		assert.NoError(t, err)
	})
}
