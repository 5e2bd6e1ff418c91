package repository_test

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	repo *repository.UserRepository
}

func (ts *UserRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewUserRepository(repository.SetupTestDatabase(ts.T()))
}

func TestUserRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (ts *UserRepositoryTestSuite) createUser(username string, role entity.Role) int64 {
	id, err := ts.repo.CreateUser(context.Background(), entity.UserInput{
		Username: username,
		FullName: lo.ToPtr("Test " + username),
		Email:    lo.ToPtr(username + "@example.test"),
		Role:     role,
	}, nil)
	ts.Require().NoError(err)

	return id
}

func (ts *UserRepositoryTestSuite) TestCreateUser() {
	ctx := context.Background()
	id := ts.createUser("kamal", entity.RoleTechnician)

	u, err := ts.repo.UserByID(ctx, id)
	ts.Require().NoError(err)
	ts.Require().Equal("kamal", u.Username)
	ts.Require().Equal(entity.RoleTechnician, u.Role)
	ts.Require().Equal(entity.UserStatusActive, u.Status)
	ts.Require().Nil(u.PasswordHash)

	ts.Run("duplicate_username", func() {
		_, err := ts.repo.CreateUser(ctx, entity.UserInput{Username: "kamal", Role: entity.RoleUser}, nil)
		ts.Require().ErrorIs(err, entity.ErrAlreadyExists)
	})
}

func (ts *UserRepositoryTestSuite) TestActiveUserByUsername() {
	ctx := context.Background()
	id := ts.createUser("nimal", entity.RoleUser)

	_, err := ts.repo.ActiveUserByUsername(ctx, "nimal")
	ts.Require().NoError(err)

	n, err := ts.repo.SetUserStatus(ctx, id, entity.UserStatusInactive)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)

	_, err = ts.repo.ActiveUserByUsername(ctx, "nimal")
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UserRepositoryTestSuite) TestUpdatePassword() {
	ctx := context.Background()
	ts.createUser("sunil", entity.RoleUser)

	n, err := ts.repo.UpdatePassword(ctx, "sunil", "hash")
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)

	n, err = ts.repo.UpdatePassword(ctx, "missing", "hash")
	ts.Require().NoError(err)
	ts.Require().Zero(n)
}

func (ts *UserRepositoryTestSuite) TestUpdateUserKeepsStatus() {
	ctx := context.Background()
	id := ts.createUser("amal", entity.RoleUser)

	_, err := ts.repo.SetUserStatus(ctx, id, entity.UserStatusInactive)
	ts.Require().NoError(err)

	n, err := ts.repo.UpdateUser(ctx, id, entity.UserInput{Username: "amal", Role: entity.RoleUnitAdmin})
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)

	u, err := ts.repo.UserByID(ctx, id)
	ts.Require().NoError(err)
	ts.Require().Equal(entity.RoleUnitAdmin, u.Role)
	ts.Require().Equal(entity.UserStatusInactive, u.Status)
}

func (ts *UserRepositoryTestSuite) TestFCMTokens() {
	ctx := context.Background()
	admin := ts.createUser("admin", entity.RoleAdmin)
	tech := ts.createUser("tech", entity.RoleTechnician)
	ts.createUser("super", entity.RoleSuper)

	ts.Require().NoError(ts.repo.UpdateFCMToken(ctx, admin, "token-admin"))
	ts.Require().NoError(ts.repo.UpdateFCMToken(ctx, tech, "token-tech"))

	token, err := ts.repo.FCMToken(ctx, tech)
	ts.Require().NoError(err)
	ts.Require().Equal("token-tech", token)

	tokens, err := ts.repo.FCMTokensByRoles(ctx, entity.RoleAdmin, entity.RoleSuper)
	ts.Require().NoError(err)
	ts.Require().Equal([]string{"token-admin"}, tokens)

	_, err = ts.repo.FCMToken(ctx, 9999)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *UserRepositoryTestSuite) TestUsers() {
	ts.createUser("first", entity.RoleUser)
	ts.createUser("second", entity.RoleStation)

	users, err := ts.repo.Users(context.Background())
	ts.Require().NoError(err)
	ts.Require().Len(users, 2)
	ts.Require().Equal("first", users[0].Username)
	ts.Require().Equal(entity.RoleStation, users[1].Role)
}
