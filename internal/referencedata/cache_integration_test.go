//go:build integration

package referencedata_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"contactregistry/internal/referencedata"
	"contactregistry/pkg/platform/sentinel"
	"contactregistry/pkg/testutil/containers"
)

// countingStore records how many lookups reach the backing catalogue.
type countingStore struct {
	referencedata.Store
	lookups int
}

func (s *countingStore) Lookup(ctx context.Context, group referencedata.Group, code string) (*referencedata.Code, error) {
	s.lookups++
	return s.Store.Lookup(ctx, group, code)
}

type CacheIntegrationSuite struct {
	suite.Suite
	ctx   context.Context
	redis *containers.RedisContainer
	inner *countingStore
	store *referencedata.CachedStore
}

func (s *CacheIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CacheIntegrationSuite) TearDownSuite() {
	if s.redis != nil {
		_ = s.redis.Client.Close()
		_ = s.redis.Container.Terminate(s.ctx)
	}
}

func (s *CacheIntegrationSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))

	catalogue := referencedata.NewInMemory()
	catalogue.Put(&referencedata.Code{Group: referencedata.GroupPhoneType, Code: "MOB", Description: "Mobile", Active: true})
	catalogue.Put(&referencedata.Code{Group: referencedata.GroupPhoneType, Code: "HOME", Description: "Home", Active: true})

	s.inner = &countingStore{Store: catalogue}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = referencedata.NewCachedStore(s.inner, s.redis.Client, time.Minute, logger, nil)
}

func (s *CacheIntegrationSuite) TestSecondLookupServedFromCache() {
	first, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "MOB")
	s.Require().NoError(err)
	s.Equal("Mobile", first.Description)
	s.Equal(1, s.inner.lookups)

	second, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "MOB")
	s.Require().NoError(err)
	s.Equal("Mobile", second.Description)
	s.Equal(1, s.inner.lookups)
}

func (s *CacheIntegrationSuite) TestLookupIsCaseInsensitiveAcrossCacheAndStore() {
	_, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "mob")
	s.Require().NoError(err)

	cached, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "MOB")
	s.Require().NoError(err)
	s.Equal("Mobile", cached.Description)
	s.Equal(1, s.inner.lookups)
}

func (s *CacheIntegrationSuite) TestMissesAreNotCached() {
	_, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "SAT")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "SAT")
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.Equal(2, s.inner.lookups)
}

func (s *CacheIntegrationSuite) TestCorruptEntryFallsThroughAndRewrites() {
	s.Require().NoError(s.redis.Client.Set(s.ctx, "refdata:PHONE_TYPE:MOB", "{not json", time.Minute).Err())

	entry, err := s.store.Lookup(s.ctx, referencedata.GroupPhoneType, "MOB")
	s.Require().NoError(err)
	s.Equal("Mobile", entry.Description)
	s.Equal(1, s.inner.lookups)

	payload, err := s.redis.Client.Get(s.ctx, "refdata:PHONE_TYPE:MOB").Result()
	s.Require().NoError(err)
	s.Contains(payload, `"Mobile"`)
}

func (s *CacheIntegrationSuite) TestListByGroupBypassesCache() {
	codes, err := s.store.ListByGroup(s.ctx, referencedata.GroupPhoneType)
	s.Require().NoError(err)
	s.Len(codes, 2)

	again, err := s.store.ListByGroup(s.ctx, referencedata.GroupPhoneType)
	s.Require().NoError(err)
	s.Len(again, 2)
}

func TestCacheIntegrationSuite(t *testing.T) {
	suite.Run(t, new(CacheIntegrationSuite))
}
