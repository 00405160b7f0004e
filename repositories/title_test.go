package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yamdb-api/database/testdb"
	"github.com/yamdb-api/dto"
	"github.com/yamdb-api/models"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	users      *UserRepository
	categories *CategoryRepository
	genres     *GenreRepository
	titles     *TitleRepository
	reviews    *ReviewRepository
	comments   *CommentRepository
}

func newFixture(t *testing.T) fixture {
	db := testdb.New(t)
	return fixture{
		db:         db,
		users:      NewUserRepository(db),
		categories: NewCategoryRepository(db),
		genres:     NewGenreRepository(db),
		titles:     NewTitleRepository(db),
		reviews:    NewReviewRepository(db),
		comments:   NewCommentRepository(db),
	}
}

func (f fixture) user(t *testing.T, name string) models.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), models.User{Username: name, Email: name + "@example.com", Role: models.RoleUser})
	require.NoError(t, err)
	return u
}

func (f fixture) review(t *testing.T, title models.Title, author models.User, score int) models.Review {
	t.Helper()
	r, err := f.reviews.Create(context.Background(), models.Review{TitleID: title.ID, AuthorID: author.ID, Text: "text", Score: score})
	require.NoError(t, err)
	return r
}

func TestTitleRepository_FiltersAndRating(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	films, err := f.categories.Create(ctx, models.Category{Name: "Films", Slug: "films"})
	require.NoError(t, err)
	books, err := f.categories.Create(ctx, models.Category{Name: "Books", Slug: "books"})
	require.NoError(t, err)
	drama, err := f.genres.Create(ctx, models.Genre{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)
	comedy, err := f.genres.Create(ctx, models.Genre{Name: "Comedy", Slug: "comedy"})
	require.NoError(t, err)

	godfather, err := f.titles.Create(ctx, models.Title{Name: "The Godfather", Year: 1972, CategoryID: &films.ID, Genres: []models.Genre{drama}})
	require.NoError(t, err)
	_, err = f.titles.Create(ctx, models.Title{Name: "Three Men in a Boat", Year: 1889, CategoryID: &books.ID, Genres: []models.Genre{comedy, drama}})
	require.NoError(t, err)
	_, err = f.titles.Create(ctx, models.Title{Name: "Uncategorised", Year: 2000})
	require.NoError(t, err)

	alice, bob := f.user(t, "alice"), f.user(t, "bob")
	f.review(t, godfather, alice, 10)
	f.review(t, godfather, bob, 7)

	titles, total, err := f.titles.FindWithPagination(ctx, dto.TitleFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, titles, 3)
	require.NotNil(t, titles[0].Rating)
	assert.InDelta(t, 8.5, *titles[0].Rating, 1e-9)
	assert.Nil(t, titles[1].Rating)
	assert.Nil(t, titles[2].Category)
	require.NotNil(t, titles[0].Category)
	assert.Equal(t, "films", titles[0].Category.Slug)

	tests := []struct {
		name   string
		filter dto.TitleFilter
		want   []string
	}{
		{"name icontains", dto.TitleFilter{Name: "GODF"}, []string{"The Godfather"}},
		{"year", dto.TitleFilter{Year: ptr(1889)}, []string{"Three Men in a Boat"}},
		{"category", dto.TitleFilter{Category: "books"}, []string{"Three Men in a Boat"}},
		{"genre", dto.TitleFilter{Genre: "drama"}, []string{"The Godfather", "Three Men in a Boat"}},
		{"combined", dto.TitleFilter{Genre: "drama", Category: "films"}, []string{"The Godfather"}},
		{"no match", dto.TitleFilter{Name: "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Page, tt.filter.PageSize = 1, 10
			got, count, err := f.titles.FindWithPagination(ctx, tt.filter)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.want), count)
			var names []string
			for _, title := range got {
				names = append(names, title.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestTitleRepository_UpdateReplacesGenres(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	drama, err := f.genres.Create(ctx, models.Genre{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)
	comedy, err := f.genres.Create(ctx, models.Genre{Name: "Comedy", Slug: "comedy"})
	require.NoError(t, err)
	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001, Genres: []models.Genre{drama}})
	require.NoError(t, err)

	title.Name = "Film (director's cut)"
	require.NoError(t, f.titles.Update(ctx, title, []models.Genre{comedy}))

	got, err := f.titles.FindByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Film (director's cut)", got.Name)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "comedy", got.Genres[0].Slug)

	// nil keeps genres as they are
	require.NoError(t, f.titles.Update(ctx, got, nil))
	got, err = f.titles.FindByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Len(t, got.Genres, 1)
}

func TestCategoryRepository_DeleteKeepsTitles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	films, err := f.categories.Create(ctx, models.Category{Name: "Films", Slug: "films"})
	require.NoError(t, err)
	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001, CategoryID: &films.ID})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(ctx, films.ID))

	got, err := f.titles.FindByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.Category)

	_, err = f.categories.FindBySlug(ctx, "films")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGenreRepository_DeleteDetachesTitles(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	drama, err := f.genres.Create(ctx, models.Genre{Name: "Drama", Slug: "drama"})
	require.NoError(t, err)
	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001, Genres: []models.Genre{drama}})
	require.NoError(t, err)

	require.NoError(t, f.genres.Delete(ctx, drama.ID))

	got, err := f.titles.FindByID(ctx, title.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestTitleRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001})
	require.NoError(t, err)
	alice := f.user(t, "alice")
	review := f.review(t, title, alice, 5)
	_, err = f.comments.Create(ctx, models.Comment{ReviewID: review.ID, AuthorID: alice.ID, Text: "hi"})
	require.NoError(t, err)

	require.NoError(t, f.titles.Delete(ctx, title.ID))

	exists, err := f.titles.Exists(ctx, title.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var reviews, comments int64
	require.NoError(t, f.db.Model(&models.Review{}).Count(&reviews).Error)
	require.NoError(t, f.db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, reviews)
	assert.Zero(t, comments)
}

func TestReviewRepository_UniquePerAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001})
	require.NoError(t, err)
	alice := f.user(t, "alice")
	f.review(t, title, alice, 5)

	exists, err := f.reviews.ExistsByTitleAndAuthor(ctx, title.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = f.reviews.Create(ctx, models.Review{TitleID: title.ID, AuthorID: alice.ID, Text: "again", Score: 6})
	assert.True(t, IsUniqueViolation(err), "expected unique violation, got %v", err)
}

func TestUserRepository_SearchAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice, _ := f.user(t, "alice"), f.user(t, "alicia")
	f.user(t, "bob")

	users, total, err := f.users.FindWithPagination(ctx, 1, 10, "ALI")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)

	clashes, err := f.users.FindByUsernameOrEmail(ctx, "bob", "ALICE@example.com")
	require.NoError(t, err)
	assert.Len(t, clashes, 2)

	title, err := f.titles.Create(ctx, models.Title{Name: "Film", Year: 2001})
	require.NoError(t, err)
	f.review(t, title, alice, 9)

	require.NoError(t, f.users.Delete(ctx, alice.ID))
	_, err = f.users.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var reviews int64
	require.NoError(t, f.db.Model(&models.Review{}).Count(&reviews).Error)
	assert.Zero(t, reviews)
}

func TestUserRepository_ConsumeConfirmationCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	alice := f.user(t, "alice")
	require.NoError(t, f.users.SetConfirmationCode(ctx, alice.ID, "hash-1"))

	ok, err := f.users.ConsumeConfirmationCode(ctx, alice.ID, "stale")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.users.ConsumeConfirmationCode(ctx, alice.ID, "hash-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.users.ConsumeConfirmationCode(ctx, alice.ID, "hash-1")
	require.NoError(t, err)
	assert.False(t, ok, "a cleared code must not be consumed twice")

	stored, err := f.users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ConfirmationCode)
}

func TestPaginate_HugePage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "alice")

	var users []models.User
	err := f.db.WithContext(ctx).Scopes(Paginate(int(^uint(0)>>1), 10)).Find(&users).Error
	require.NoError(t, err)
	assert.Empty(t, users, "an out of range page must not fall back to the first page")
}

func ptr[T any](v T) *T { return &v }
