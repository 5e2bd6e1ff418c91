package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/repository"
)

type UsedTokenRepositoryTestSuite struct {
	suite.Suite
	repo *repository.UsedTokenRepository
}

func (ts *UsedTokenRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewUsedTokenRepository(repository.SetupTestDatabase(ts.T()))
}

func TestUsedTokenRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UsedTokenRepositoryTestSuite))
}

func (ts *UsedTokenRepositoryTestSuite) TestMarkTokenUsed() {
	ctx := context.Background()
	jti := uuid.Must(uuid.NewV4())

	err := ts.repo.MarkTokenUsed(ctx, jti, time.Now().Add(time.Hour))
	ts.Require().NoError(err)

	err = ts.repo.MarkTokenUsed(ctx, jti, time.Now().Add(time.Hour))
	ts.Require().ErrorIs(err, entity.ErrTokenUsed)
}

func (ts *UsedTokenRepositoryTestSuite) TestDeleteExpiredTokens() {
	ctx := context.Background()

	ts.Require().NoError(ts.repo.MarkTokenUsed(ctx, uuid.Must(uuid.NewV4()), time.Now().Add(-time.Hour)))
	ts.Require().NoError(ts.repo.MarkTokenUsed(ctx, uuid.Must(uuid.NewV4()), time.Now().Add(time.Hour)))

	n, err := ts.repo.DeleteExpiredTokens(ctx)
	ts.Require().NoError(err)
	ts.Require().Equal(int64(1), n)
}
