package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/app-blogs/backend/models"
)

func TestPostCreateWithTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)

	post := models.Post{AuthorID: 1, Title: "Hello", Body: "World"}
	postID, err := repo.Create(&post, []string{"go", "infra", "go"})
	require.NoError(t, err)
	require.NotZero(t, postID)

	found, err := repo.FindByID(postID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Hello", found.Title)
	assert.False(t, found.PublishDate.IsZero(), "publish date defaults to now")

	// Tags come back ordered by name, the duplicate collapsed
	require.Len(t, found.Tags, 2)
	assert.Equal(t, "go", found.Tags[0].Name)
	assert.Equal(t, "infra", found.Tags[1].Name)
}

func TestPostCreateReusesExistingTags(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)

	first := models.Post{AuthorID: 1, Title: "a", Body: "a"}
	_, err := repo.Create(&first, []string{"go"})
	require.NoError(t, err)

	second := models.Post{AuthorID: 1, Title: "b", Body: "b"}
	_, err = repo.Create(&second, []string{"go"})
	require.NoError(t, err)

	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestPostCreateRollsBackCompletely(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)

	// Sabotage the association insert so the transaction fails after
	// the post and tag rows were written inside it.
	require.NoError(t, db.Migrator().DropTable(&models.PostTag{}))

	post := models.Post{AuthorID: 1, Title: "doomed", Body: "b"}
	_, err := repo.Create(&post, []string{"t1", "t2", "t3"})
	require.Error(t, err)

	var postCount, tagCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Zero(t, postCount, "post row must not survive the rollback")
	assert.Zero(t, tagCount, "tag rows must not survive the rollback")
}

func TestPostFindByIDAbsent(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	found, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPostPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		post := models.Post{
			AuthorID:    1,
			Title:       fmt.Sprintf("post-%d", i),
			Body:        "b",
			PublishDate: base.AddDate(0, 0, i),
		}
		_, err := repo.Create(&post, nil)
		require.NoError(t, err)
	}

	total, page, err := repo.FindPage(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)

	// Most recent publish dates first
	assert.Equal(t, "post-4", page[0].Title)
	assert.Equal(t, "post-3", page[1].Title)

	total, rest, err := repo.FindPage(4, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rest, 1)
	assert.Equal(t, "post-0", rest[0].Title)
}

func TestPostPartialUpdate(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	post := models.Post{AuthorID: 7, Title: "old title", Body: "old body", Published: false}
	postID, err := repo.Create(&post, []string{"go"})
	require.NoError(t, err)

	newTitle := "new title"
	published := true
	updated, err := repo.Update(postID, models.PostPatch{Title: &newTitle, Published: &published})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "new title", updated.Title)
	assert.True(t, updated.Published)
	// Omitted fields keep their prior values, tags and author untouched
	assert.Equal(t, "old body", updated.Body)
	assert.Equal(t, int64(7), updated.AuthorID)
	require.Len(t, updated.Tags, 1)
}

func TestPostUpdateAbsent(t *testing.T) {
	repo := NewPostRepo(newTestDB(t))

	title := "x"
	updated, err := repo.Update(999, models.PostPatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPostDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepo(db)
	ratingRepo := NewRatingRepo(db)

	kept := models.Post{AuthorID: 1, Title: "kept", Body: "b"}
	_, err := repo.Create(&kept, []string{"shared"})
	require.NoError(t, err)

	doomed := models.Post{AuthorID: 1, Title: "doomed", Body: "b"}
	doomedID, err := repo.Create(&doomed, []string{"shared"})
	require.NoError(t, err)
	require.NoError(t, ratingRepo.Record(doomedID, 4))

	removed, err := repo.Delete(doomedID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Second delete and unknown ids report false
	removed, err = repo.Delete(doomedID)
	require.NoError(t, err)
	assert.False(t, removed)
	removed, err = repo.Delete(999)
	require.NoError(t, err)
	assert.False(t, removed)

	// Association rows for the deleted post are gone
	var links, ratingLinks int64
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", doomedID).Count(&links).Error)
	require.NoError(t, db.Model(&models.PostRating{}).Where("post_id = ?", doomedID).Count(&ratingLinks).Error)
	assert.Zero(t, links)
	assert.Zero(t, ratingLinks)

	// The shared tag entity survives and the other post still carries it
	keptPost, err := repo.FindByID(kept.ID)
	require.NoError(t, err)
	require.NotNil(t, keptPost)
	require.Len(t, keptPost.Tags, 1)
	assert.Equal(t, "shared", keptPost.Tags[0].Name)
}
