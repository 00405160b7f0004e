package dto

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	return errs
}

func TestSignupRequest_Validate(t *testing.T) {
	require.NoError(t, SignupRequest{Username: "alice", Email: "a@x.com"}.Validate())
	require.NoError(t, SignupRequest{Username: "j.doe+1@home", Email: "james@x.com"}.Validate())
	require.NoError(t, SignupRequest{Username: "иван_1", Email: "ivan@x.com"}.Validate())

	tests := []struct {
		name  string
		req   SignupRequest
		field string
	}{
		{"reserved username", SignupRequest{Username: "me", Email: "a@x.com"}, "username"},
		{"reserved username any case", SignupRequest{Username: "ME", Email: "a@x.com"}, "username"},
		{"bad username chars", SignupRequest{Username: "al ice", Email: "a@x.com"}, "username"},
		{"bad unicode username chars", SignupRequest{Username: "иван!", Email: "a@x.com"}, "username"},
		{"missing username", SignupRequest{Email: "a@x.com"}, "username"},
		{"reserved email", SignupRequest{Username: "alice", Email: "me@x.com"}, "email"},
		{"bad email", SignupRequest{Username: "alice", Email: "not-an-email"}, "email"},
		{"missing email", SignupRequest{Username: "alice"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := fieldErrors(t, tt.req.Validate())
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestReservedUsername_AnyEmail(t *testing.T) {
	for _, email := range []string{"a@x.com", "me@x.com", "", "bad"} {
		errs := fieldErrors(t, SignupRequest{Username: "me", Email: email}.Validate())
		assert.Contains(t, errs, "username")
	}
}

func TestIsReservedEmail(t *testing.T) {
	assert.True(t, IsReservedEmail("me@example.com"))
	assert.True(t, IsReservedEmail("Me@example.com"))
	assert.False(t, IsReservedEmail("james@example.com"))
	assert.False(t, IsReservedEmail("someone@me.com"))
}

func TestCreateReviewRequest_ScoreBounds(t *testing.T) {
	for _, score := range []int{1, 5, 10} {
		assert.NoError(t, CreateReviewRequest{Text: "ok", Score: intPtr(score)}.Validate(), score)
	}
	for _, score := range []int{-1, 0, 11, 100} {
		errs := fieldErrors(t, CreateReviewRequest{Text: "ok", Score: intPtr(score)}.Validate())
		assert.Contains(t, errs, "score", score)
	}

	errs := fieldErrors(t, CreateReviewRequest{Text: "ok"}.Validate())
	assert.Contains(t, errs, "score")
}

func TestUpdateReviewRequest_Validate(t *testing.T) {
	require.NoError(t, UpdateReviewRequest{}.Validate())
	require.NoError(t, UpdateReviewRequest{Score: intPtr(10)}.Validate())

	errs := fieldErrors(t, UpdateReviewRequest{Score: intPtr(0)}.Validate())
	assert.Contains(t, errs, "score")

	errs = fieldErrors(t, UpdateReviewRequest{Text: strPtr("")}.Validate())
	assert.Contains(t, errs, "text")
}

func TestCreateUserRequest_Validate(t *testing.T) {
	require.NoError(t, CreateUserRequest{Username: "carol", Email: "carol@example.com"}.Validate())
	require.NoError(t, CreateUserRequest{Username: "carol", Email: "carol@example.com", Role: "admin"}.Validate())

	errs := fieldErrors(t, CreateUserRequest{Username: "carol", Email: "carol@example.com", Role: "owner"}.Validate())
	assert.Contains(t, errs, "role")

	errs = fieldErrors(t, CreateUserRequest{Username: "carol", Email: "not-an-email"}.Validate())
	assert.Contains(t, errs, "email")
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	require.NoError(t, UpdateUserRequest{Bio: strPtr("hello")}.Validate())
	require.NoError(t, UpdateUserRequest{Role: strPtr("moderator")}.Validate())

	errs := fieldErrors(t, UpdateUserRequest{Role: strPtr("owner")}.Validate())
	assert.Contains(t, errs, "role")

	errs = fieldErrors(t, UpdateUserRequest{Role: strPtr("")}.Validate())
	assert.Contains(t, errs, "role")

	errs = fieldErrors(t, UpdateUserRequest{Username: strPtr("me")}.Validate())
	assert.Contains(t, errs, "username")
}

func TestCreateTitleRequest_Validate(t *testing.T) {
	require.NoError(t, CreateTitleRequest{Name: "Dune", Year: 1965, Genre: []string{"sci-fi"}}.Validate())

	errs := fieldErrors(t, CreateTitleRequest{Name: "Future", Year: 3000}.Validate())
	assert.Contains(t, errs, "year")

	errs = fieldErrors(t, CreateTitleRequest{Name: "Dune", Year: 1965, Genre: []string{""}}.Validate())
	assert.Contains(t, errs, "genre")
}

func TestClassifierRequest_Validate(t *testing.T) {
	require.NoError(t, ClassifierRequest{Name: "Films", Slug: "films"}.Validate())

	errs := fieldErrors(t, ClassifierRequest{Name: "Films", Slug: "bad slug!"}.Validate())
	assert.Contains(t, errs, "slug")
}

func TestPageQuery(t *testing.T) {
	q := PageQuery{}.Normalize(10)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, 0, q.Offset())

	q = PageQuery{Page: 3, PageSize: 500}.Normalize(10)
	assert.Equal(t, 100, q.PageSize)
	assert.Equal(t, 200, q.Offset())

	q = PageQuery{Page: int(^uint(0) >> 1), PageSize: 100}.Normalize(10)
	assert.Equal(t, MaxPage, q.Page)
	assert.Positive(t, q.Offset())

	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
}
