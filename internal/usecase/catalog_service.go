package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
)

type CreateSportTypeInput struct {
	Name     string
	Category string
}

type CreateCompetitionInput struct {
	Name        string
	SportTypeID int64
	Date        time.Time
	Location    string
}

type CreateTeamInput struct {
	SportTypeID int64
	FacultyID   int64
	StudentIDs  []int64
}

// CatalogService manages the reference data scoring runs against.
type CatalogService struct {
	tx           store.Transactor
	sports       sport.Repository
	faculties    faculty.Repository
	competitions competition.Repository
	teams        team.Repository
}

func NewCatalogService(
	tx store.Transactor,
	sports sport.Repository,
	faculties faculty.Repository,
	competitions competition.Repository,
	teams team.Repository,
) *CatalogService {
	return &CatalogService{
		tx:           tx,
		sports:       sports,
		faculties:    faculties,
		competitions: competitions,
		teams:        teams,
	}
}

func (s *CatalogService) ListSportTypes(ctx context.Context) ([]sport.SportType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSportTypes")
	defer span.End()

	items, err := s.sports.List(ctx)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list sport types: %w", err))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// CreateSportType stores a sport type with its category. A missing category is
// derived from the name once, here, and never re-derived.
func (s *CatalogService) CreateSportType(ctx context.Context, input CreateSportTypeInput) (sport.SportType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateSportType")
	defer span.End()

	item := sport.SportType{Name: strings.TrimSpace(input.Name)}
	if strings.TrimSpace(input.Category) == "" {
		item.Category = sport.ClassifyName(item.Name)
	} else {
		category, err := sport.ParseCategory(input.Category)
		if err != nil {
			return sport.SportType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		item.Category = category
	}
	if err := item.Validate(); err != nil {
		return sport.SportType{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.sports.Create(ctx, item)
	if err != nil {
		return sport.SportType{}, translateStoreError(fmt.Errorf("create sport type: %w", err))
	}
	return created, nil
}

func (s *CatalogService) ListFaculties(ctx context.Context) ([]faculty.Faculty, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListFaculties")
	defer span.End()

	items, err := s.faculties.List(ctx)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list faculties: %w", err))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *CatalogService) ListCompetitions(ctx context.Context, sportTypeID int64) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListCompetitions")
	defer span.End()

	if err := s.requireSportType(ctx, sportTypeID); err != nil {
		return nil, err
	}
	items, err := s.competitions.ListBySportType(ctx, sportTypeID)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list competitions sport_type=%d: %w", sportTypeID, err))
	}
	return items, nil
}

func (s *CatalogService) CreateCompetition(ctx context.Context, input CreateCompetitionInput) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateCompetition")
	defer span.End()

	item := competition.Competition{
		Name:        strings.TrimSpace(input.Name),
		SportTypeID: input.SportTypeID,
		Date:        input.Date.UTC(),
		Location:    strings.TrimSpace(input.Location),
	}
	if err := item.Validate(); err != nil {
		return competition.Competition{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.requireSportType(ctx, item.SportTypeID); err != nil {
		return competition.Competition{}, err
	}

	created, err := s.competitions.Create(ctx, item)
	if err != nil {
		return competition.Competition{}, translateStoreError(fmt.Errorf("create competition: %w", err))
	}
	return created, nil
}

func (s *CatalogService) ListTeams(ctx context.Context, sportTypeID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	if err := s.requireSportType(ctx, sportTypeID); err != nil {
		return nil, err
	}
	items, err := s.teams.ListBySportType(ctx, sportTypeID)
	if err != nil {
		return nil, translateStoreError(fmt.Errorf("list teams sport_type=%d: %w", sportTypeID, err))
	}
	return items, nil
}

// CreateTeam registers a faculty roster for a team sport. Every member must
// study at the team's faculty.
func (s *CatalogService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateTeam")
	defer span.End()

	item := team.Team{
		SportTypeID: input.SportTypeID,
		FacultyID:   input.FacultyID,
		StudentIDs:  append([]int64(nil), input.StudentIDs...),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, st store.Store) error {
		sportType, ok, err := st.SportTypes().GetByID(ctx, item.SportTypeID)
		if err != nil {
			return fmt.Errorf("get sport type=%d: %w", item.SportTypeID, err)
		}
		if !ok {
			return fmt.Errorf("%w: sport_type=%d", ErrNotFound, item.SportTypeID)
		}
		if !sportType.Category.IsTeam() {
			return fmt.Errorf("%w: sport_type=%d is not a team sport", ErrInvalidInput, item.SportTypeID)
		}

		if _, ok, err := st.Faculties().GetByID(ctx, item.FacultyID); err != nil {
			return fmt.Errorf("get faculty=%d: %w", item.FacultyID, err)
		} else if !ok {
			return fmt.Errorf("%w: faculty=%d", ErrNotFound, item.FacultyID)
		}

		groups, err := st.Faculties().ListGroups(ctx)
		if err != nil {
			return fmt.Errorf("list groups: %w", err)
		}
		facultyByGroup := make(map[int64]int64, len(groups))
		for _, g := range groups {
			facultyByGroup[g.ID] = g.FacultyID
		}

		for _, studentID := range item.StudentIDs {
			member, ok, err := st.Students().GetByID(ctx, studentID)
			if err != nil {
				return fmt.Errorf("get student=%d: %w", studentID, err)
			}
			if !ok {
				return fmt.Errorf("%w: student=%d", ErrNotFound, studentID)
			}
			if facultyByGroup[member.GroupID] != item.FacultyID {
				return fmt.Errorf("%w: student=%d does not belong to faculty=%d", ErrInvalidInput, studentID, item.FacultyID)
			}
		}

		created, err = st.Teams().Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return team.Team{}, translateStoreError(err)
	}

	return created, nil
}

func (s *CatalogService) requireSportType(ctx context.Context, sportTypeID int64) error {
	if sportTypeID <= 0 {
		return fmt.Errorf("%w: sport type id must be > 0", ErrInvalidInput)
	}
	_, ok, err := s.sports.GetByID(ctx, sportTypeID)
	if err != nil {
		return translateStoreError(fmt.Errorf("get sport type=%d: %w", sportTypeID, err))
	}
	if !ok {
		return fmt.Errorf("%w: sport_type=%d", ErrNotFound, sportTypeID)
	}
	return nil
}
