//go:build unit

package user_test

import (
	"testing"

	"luxstay-api/internal/domain/user"
	"luxstay-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("success: default user", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewFullName("Jane", "Doe")
		expected, err := user.NewUser(email, "hashed_password", name, user.RoleClient)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, expected.Email(), actual.Email())
		assert.Equal(t, expected.Name(), actual.Name())
		assert.Equal(t, expected.Role(), actual.Role())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "success: surrounding spaces and upper case",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("  Valid@Example.COM ") },
			},
			{
				name:   "error: empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "error: malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "error: missing @",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: client",
				mutate: func(b *builder.UserBuilder) { b.WithRole("CLIENT") },
			},
			{
				name:   "success: hotel owner",
				mutate: func(b *builder.UserBuilder) { b.AsHotelOwner() },
			},
			{
				name:   "error: admin is not self-assignable",
				mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "error: lower case role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("client") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "error: empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "success: trimmed name",
				mutate: func(b *builder.UserBuilder) { b.WithName("  Ana ", " Silva") },
			},
			{
				name:   "error: blank first name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ", "Silva") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "error: empty last name",
				mutate: func(b *builder.UserBuilder) { b.WithName("Ana", "") },
				errIs:  user.ErrEmptyName,
			},
		})
	})
}

func TestEmail_Normalized(t *testing.T) {
	email, err := user.NewEmail("  Jane.Doe@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", email.Value())
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", p.Value())
}

func TestRole(t *testing.T) {
	assert.True(t, user.RoleHotelOwner.CanManageHotels())
	assert.True(t, user.RoleAdmin.CanManageHotels())
	assert.False(t, user.RoleClient.CanManageHotels())
	assert.False(t, user.RoleAdmin.IsSelfAssignable())
}

func TestUser_Rename(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	name, err := user.NewFullName("Janet", "Roe")
	require.NoError(t, err)
	u.Rename(name)

	assert.Equal(t, "Janet", u.Name().First())
	assert.Equal(t, "Roe", u.Name().Last())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
