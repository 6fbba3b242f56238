package dashboard

import (
	"context"
	"reflect"

	"bankwise_support_backend/internal/agents/directory"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/logger"
)

const defaultRecordLimit = 100

// Service assembles dashboard datasets from the generated store, the
// database, or the agent directory.
type Service struct {
	store *mockdata.Store
	repo  *Repository
	dir   *directory.Directory
	log   *logger.Logger
}

func NewService(store *mockdata.Store, repo *Repository, dir *directory.Directory, log *logger.Logger) *Service {
	return &Service{store: store, repo: repo, dir: dir, log: log}
}

// Data returns up to 100 records for the requested dataset along with the
// record count. A failing or empty source yields an empty dataset rather
// than an error, so the dashboard always renders.
func (s *Service) Data(ctx context.Context, source, dataType string) (any, int) {
	if dataType == "agents" {
		agents := s.dir.All()
		if len(agents) > defaultRecordLimit {
			agents = agents[:defaultRecordLimit]
		}
		return agents, len(agents)
	}

	if source == "db" {
		records, err := s.repo.Rows(ctx, dataType, defaultRecordLimit)
		if err != nil {
			s.log.Warn("dashboard database read failed", "data_type", dataType, "error", err)
			return []map[string]any{}, 0
		}
		return records, len(records)
	}

	records := s.store.Records(dataType, defaultRecordLimit)
	if records == nil {
		s.log.Warn("dashboard dataset unknown", "data_type", dataType)
		return []map[string]any{}, 0
	}
	return records, reflect.ValueOf(records).Len()
}
