package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"growthsphere/internal/platform/docstore"
	"growthsphere/internal/program/models"
)

// MongoStoreSuite exercises the Mongo-backed store against a live instance.
// Set GROWTHSPHERE_TEST_MONGO_URL to run, e.g. mongodb://localhost:27017.
type MongoStoreSuite struct {
	suite.Suite
	conn  *docstore.Conn
	store *Mongo
	ctx   context.Context
}

func TestMongoStoreSuite(t *testing.T) {
	if os.Getenv("GROWTHSPHERE_TEST_MONGO_URL") == "" {
		t.Skip("GROWTHSPHERE_TEST_MONGO_URL not set")
	}
	suite.Run(t, new(MongoStoreSuite))
}

func (s *MongoStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	dbName := fmt.Sprintf("growthsphere_test_%d", time.Now().UnixNano())
	conn, err := docstore.Connect(s.ctx, os.Getenv("GROWTHSPHERE_TEST_MONGO_URL"), dbName)
	s.Require().NoError(err)
	s.conn = conn
	s.store = NewMongo(conn.Database())
}

func (s *MongoStoreSuite) TearDownSuite() {
	if s.conn != nil {
		_ = s.conn.Database().Drop(s.ctx)
		_ = s.conn.Disconnect(s.ctx)
	}
}

func (s *MongoStoreSuite) newProgram(name string) *models.OrganizationProgram {
	p := &models.OrganizationProgram{
		OrganizationName: name,
		OrganizationType: models.OrgTypeInsurance,
		PrimaryContact:   models.PrimaryContact{Name: "Jo", Email: "jo@example.com"},
		DomicileRegion:   models.RegionMENA,
	}
	p.Normalize()
	return p
}

func (s *MongoStoreSuite) TestInsertFindRoundTrip() {
	id, err := s.store.Insert(s.ctx, s.newProgram("RoundTrip Org"))
	s.Require().NoError(err)
	s.False(id.IsZero())

	found, err := s.store.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("RoundTrip Org", found.OrganizationName)
	s.Equal(id.ObjectID(), found.ID)
	s.Require().NotNil(found.MarketingEligibility)
	s.Equal(models.Eligible, found.MarketingEligibility.APAC)
}

func (s *MongoStoreSuite) TestListLimit() {
	for i := 0; i < 3; i++ {
		_, err := s.store.Insert(s.ctx, s.newProgram(fmt.Sprintf("Org %d", i)))
		s.Require().NoError(err)
	}

	programs, err := s.store.List(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(programs, 2)
}
