package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func TestPaintingRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	db := database.New()
	defer db.Close()

	paintingRepo := NewPaintingRepository(db)

	t.Run("Create and Get Painting", func(t *testing.T) {
		year := 2021
		painting := &models.Painting{
			ID:        primitive.NewObjectID(),
			Title:     "Crimson Dusk",
			Slug:      "crimson-dusk",
			Year:      &year,
			Medium:    "Oil on canvas",
			Tags:      []string{"sunset", "warm"},
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}

		created, err := paintingRepo.Create(context.Background(), painting)
		assert.NoError(t, err)
		assert.NotNil(t, created)

		found, err := paintingRepo.FindOne(context.Background(), bson.M{"slug": "crimson-dusk"})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Crimson Dusk", found.Title)

		_, err = paintingRepo.DeleteOne(context.Background(), bson.M{"_id": created.ID})
		assert.NoError(t, err)
	})

	t.Run("Cursor Pagination", func(t *testing.T) {
		var ids []primitive.ObjectID
		for _, title := range []string{"First", "Second", "Third"} {
			p := &models.Painting{
				ID:        primitive.NewObjectID(),
				Title:     title,
				Slug:      "page-" + title,
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}
			created, err := paintingRepo.Create(context.Background(), p)
			assert.NoError(t, err)
			ids = append(ids, created.ID)
		}

		firstPage, err := paintingRepo.Find(context.Background(), bson.M{}, 2)
		assert.NoError(t, err)
		assert.Len(t, firstPage, 2)

		cursor := firstPage[len(firstPage)-1].ID
		secondPage, err := paintingRepo.Find(context.Background(), bson.M{"_id": bson.M{"$gt": cursor}}, 2)
		assert.NoError(t, err)
		assert.NotEmpty(t, secondPage)
		for _, p := range secondPage {
			assert.True(t, cursor.Hex() < p.ID.Hex())
		}

		for _, id := range ids {
			_, err := paintingRepo.DeleteOne(context.Background(), bson.M{"_id": id})
			assert.NoError(t, err)
		}
	})

	t.Run("Update Painting", func(t *testing.T) {
		painting := &models.Painting{
			ID:        primitive.NewObjectID(),
			Title:     "Untitled",
			Slug:      "untitled",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		created, err := paintingRepo.Create(context.Background(), painting)
		assert.NoError(t, err)

		result, err := paintingRepo.UpdateOne(context.Background(),
			bson.M{"_id": created.ID},
			bson.M{"$set": bson.M{"title": "Named at last"}})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)

		found, err := paintingRepo.FindOne(context.Background(), bson.M{"_id": created.ID})
		assert.NoError(t, err)
		assert.Equal(t, "Named at last", found.Title)

		_, err = paintingRepo.DeleteOne(context.Background(), bson.M{"_id": created.ID})
		assert.NoError(t, err)
	})
}
