package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/spartakiad-scoring/internal/domain/competition"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/faculty"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/performance"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/sport"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/store"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/student"
	"github.com/riskibarqy/spartakiad-scoring/internal/domain/team"
)

type SeedFaculty struct {
	Name         string
	Abbreviation string
	Groups       []string
}

type SeedStudent struct {
	FirstName  string
	LastName   string
	MiddleName string
	Gender     student.Gender
	Group      string
}

type SeedCompetition struct {
	Name     string
	Sport    string
	Date     time.Time
	Location string
}

// SeedTeam references its members by index into SeedDataset.Students.
type SeedTeam struct {
	Sport    string
	Faculty  string
	Students []int
}

// SeedPerformance references its student by index and its competition by name.
type SeedPerformance struct {
	Student        int
	Competition    string
	TimeResult     *string
	OriginalResult *float64
}

// SeedDataset is a self-consistent catalog plus results. References between
// rows use names so the dataset does not depend on generated ids.
type SeedDataset struct {
	Faculties    []SeedFaculty
	SportTypes   []sport.SportType
	Students     []SeedStudent
	Competitions []SeedCompetition
	Teams        []SeedTeam
	Performances []SeedPerformance
}

type SeedCounts struct {
	Faculties    int
	Groups       int
	SportTypes   int
	Students     int
	Competitions int
	Teams        int
	Performances int
}

var seedNames = []SeedStudent{
	{FirstName: "Александр", LastName: "Новожилов", MiddleName: "Андреевич", Gender: student.GenderMale},
	{FirstName: "Екатерина", LastName: "Белова", MiddleName: "Дмитриевна", Gender: student.GenderFemale},
	{FirstName: "Сергей", LastName: "Черных", MiddleName: "Иванович", Gender: student.GenderMale},
	{FirstName: "Анастасия", LastName: "Золотова", MiddleName: "Павловна", Gender: student.GenderFemale},
	{FirstName: "Максим", LastName: "Серебряков", MiddleName: "Олегович", Gender: student.GenderMale},
	{FirstName: "Дарья", LastName: "Красникова", MiddleName: "Алексеевна", Gender: student.GenderFemale},
	{FirstName: "Артем", LastName: "Зайцев", MiddleName: "Николаевич", Gender: student.GenderMale},
	{FirstName: "Полина", LastName: "Волкова", MiddleName: "Сергеевна", Gender: student.GenderFemale},
	{FirstName: "Илья", LastName: "Медведев", MiddleName: "Константинович", Gender: student.GenderMale},
	{FirstName: "София", LastName: "Лисицына", MiddleName: "Андреевна", Gender: student.GenderFemale},
}

var seedLocations = []string{"Спортзал №1", "Стадион", "Бассейн", "Спортзал №2", "Актовый зал"}

const (
	seedGroupsPerFaculty   = 3
	seedStudentsPerGroup   = 4
	seedGroupsWithStudents = 2
)

// DefaultSeedDataset builds the demo tournament: five faculties, the eight
// standard sport types, and results for every student in every sport. Results
// are derived arithmetically so every reset yields the same standings.
func DefaultSeedDataset() SeedDataset {
	ds := SeedDataset{
		Faculties: []SeedFaculty{
			{Name: "Институт математики и информационных технологий", Abbreviation: "ИМИТ"},
			{Name: "Институт лингвистики и гуманитарных социальных наук", Abbreviation: "ИЛГИСН"},
			{Name: "Факультет технологий и инноваций", Abbreviation: "ФТИ"},
			{Name: "Медицинский институт", Abbreviation: "МедИН"},
			{Name: "Институт инженерных и инновационных технологий", Abbreviation: "ИИИТ"},
		},
		SportTypes: []sport.SportType{
			{Name: "Бег 100м", Category: sport.CategoryIndividualTime},
			{Name: "Бег 1000м", Category: sport.CategoryIndividualTime},
			{Name: "Плавание", Category: sport.CategoryIndividualTime},
			{Name: "Баскетбол", Category: sport.CategoryTeamScore},
			{Name: "Волейбол", Category: sport.CategoryTeamScore},
			{Name: "Футбол", Category: sport.CategoryTeamScore},
			{Name: "Шахматы", Category: sport.CategoryIndividualScore},
			{Name: "Настольный теннис", Category: sport.CategoryIndividualScore},
		},
	}

	studentsByFaculty := make([][]int, len(ds.Faculties))
	for fi := range ds.Faculties {
		f := &ds.Faculties[fi]
		for g := 1; g <= seedGroupsPerFaculty; g++ {
			f.Groups = append(f.Groups, fmt.Sprintf("%s-%d0%d", f.Abbreviation, g, g))
		}
		for g := 0; g < seedGroupsWithStudents; g++ {
			for k := 0; k < seedStudentsPerGroup; k++ {
				name := seedNames[(fi*4+g*2+k)%len(seedNames)]
				name.Group = f.Groups[g]
				studentsByFaculty[fi] = append(studentsByFaculty[fi], len(ds.Students))
				ds.Students = append(ds.Students, name)
			}
		}
	}

	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	for si, st := range ds.SportTypes {
		comp := SeedCompetition{
			Name:     "Соревнования по " + st.Name,
			Sport:    st.Name,
			Date:     base.AddDate(0, 0, si*3),
			Location: seedLocations[si%len(seedLocations)],
		}
		ds.Competitions = append(ds.Competitions, comp)

		for fi, members := range studentsByFaculty {
			if st.Category.IsTeam() {
				ds.Teams = append(ds.Teams, SeedTeam{
					Sport:    st.Name,
					Faculty:  ds.Faculties[fi].Abbreviation,
					Students: append([]int(nil), members...),
				})
			}
			for k, idx := range members {
				p := SeedPerformance{Student: idx, Competition: comp.Name}
				seedResult(&p, si, fi, k, ds.Students[idx].Gender, st.Category)
				ds.Performances = append(ds.Performances, p)
			}
		}
	}

	return ds
}

func seedResult(p *SeedPerformance, si, fi, k int, gender student.Gender, category sport.Category) {
	genderShift := 0
	if gender == student.GenderFemale {
		genderShift = 1
	}

	switch {
	case si == 0:
		centis := 1100 + (fi*37+k*53)%400
		p.TimeResult = stringPtr(fmt.Sprintf("0:00:%02d.%02d", centis/100, centis%100))
	case si == 1:
		seconds := 150 + (fi*29+k*41)%90
		p.TimeResult = stringPtr(fmt.Sprintf("0:%02d:%02d", seconds/60, seconds%60))
	case category.IsTimeBased():
		p.TimeResult = stringPtr(fmt.Sprintf("0:01:%02d.%02d", 30+(fi*13+k*7)%20, (fi*17+k*11)%100))
	case category.IsTeam():
		// Every member of a faculty team carries the team's score.
		p.OriginalResult = floatPtr(float64(60 + (fi*11+si*7+genderShift*5)%40))
	default:
		p.OriginalResult = floatPtr(float64(1 + (fi*3+k*2+si)%9))
	}
}

// seedStore writes ds into st. It expects an empty store.
func seedStore(ctx context.Context, st store.Store, ds SeedDataset) (SeedCounts, error) {
	var counts SeedCounts

	facultyIDs := make(map[string]int64, len(ds.Faculties))
	groupIDs := make(map[string]int64)
	for _, f := range ds.Faculties {
		created, err := st.Faculties().Create(ctx, faculty.Faculty{Name: f.Name, Abbreviation: f.Abbreviation})
		if err != nil {
			return SeedCounts{}, fmt.Errorf("seed faculty %q: %w", f.Abbreviation, err)
		}
		facultyIDs[f.Abbreviation] = created.ID
		counts.Faculties++

		for _, number := range f.Groups {
			g, err := st.Faculties().CreateGroup(ctx, faculty.Group{Number: number, FacultyID: created.ID})
			if err != nil {
				return SeedCounts{}, fmt.Errorf("seed group %q: %w", number, err)
			}
			groupIDs[number] = g.ID
			counts.Groups++
		}
	}

	sportIDs := make(map[string]int64, len(ds.SportTypes))
	for _, item := range ds.SportTypes {
		created, err := st.SportTypes().Create(ctx, sport.SportType{Name: item.Name, Category: item.Category})
		if err != nil {
			return SeedCounts{}, fmt.Errorf("seed sport type %q: %w", item.Name, err)
		}
		sportIDs[item.Name] = created.ID
		counts.SportTypes++
	}

	studentIDs := make([]int64, len(ds.Students))
	for i, item := range ds.Students {
		groupID, ok := groupIDs[item.Group]
		if !ok {
			return SeedCounts{}, fmt.Errorf("seed student %d: unknown group %q", i, item.Group)
		}
		created, err := st.Students().Create(ctx, student.Student{
			FirstName:  item.FirstName,
			LastName:   item.LastName,
			MiddleName: item.MiddleName,
			Gender:     item.Gender,
			GroupID:    groupID,
		})
		if err != nil {
			return SeedCounts{}, fmt.Errorf("seed student %d: %w", i, err)
		}
		studentIDs[i] = created.ID
		counts.Students++
	}

	type seededCompetition struct {
		id          int64
		sportTypeID int64
	}
	competitions := make(map[string]seededCompetition, len(ds.Competitions))
	for _, item := range ds.Competitions {
		sportTypeID, ok := sportIDs[item.Sport]
		if !ok {
			return SeedCounts{}, fmt.Errorf("seed competition %q: unknown sport %q", item.Name, item.Sport)
		}
		created, err := st.Competitions().Create(ctx, competition.Competition{
			Name:        item.Name,
			SportTypeID: sportTypeID,
			Date:        item.Date,
			Location:    item.Location,
		})
		if err != nil {
			return SeedCounts{}, fmt.Errorf("seed competition %q: %w", item.Name, err)
		}
		competitions[item.Name] = seededCompetition{id: created.ID, sportTypeID: sportTypeID}
		counts.Competitions++
	}

	for _, item := range ds.Teams {
		members := make([]int64, 0, len(item.Students))
		for _, idx := range item.Students {
			if idx < 0 || idx >= len(studentIDs) {
				return SeedCounts{}, fmt.Errorf("seed team %s/%s: student index %d out of range", item.Sport, item.Faculty, idx)
			}
			members = append(members, studentIDs[idx])
		}
		if _, err := st.Teams().Create(ctx, team.Team{
			SportTypeID: sportIDs[item.Sport],
			FacultyID:   facultyIDs[item.Faculty],
			StudentIDs:  members,
		}); err != nil {
			return SeedCounts{}, fmt.Errorf("seed team %s/%s: %w", item.Sport, item.Faculty, err)
		}
		counts.Teams++
	}

	now := time.Now().UTC()
	for i, item := range ds.Performances {
		comp, ok := competitions[item.Competition]
		if !ok {
			return SeedCounts{}, fmt.Errorf("seed performance %d: unknown competition %q", i, item.Competition)
		}
		if item.Student < 0 || item.Student >= len(studentIDs) {
			return SeedCounts{}, fmt.Errorf("seed performance %d: student index %d out of range", i, item.Student)
		}
		if _, err := st.Performances().Create(ctx, performance.Performance{
			StudentID:     studentIDs[item.Student],
			SportTypeID:   comp.sportTypeID,
			CompetitionID: comp.id,
			Result: performance.Result{
				TimeResult:     item.TimeResult,
				OriginalResult: item.OriginalResult,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return SeedCounts{}, fmt.Errorf("seed performance %d: %w", i, err)
		}
		counts.Performances++
	}

	return counts, nil
}

func stringPtr(v string) *string {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
