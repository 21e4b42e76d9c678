// Package stats derives the reading-statistics snapshot from the book
// collection: year-scoped counters, the monthly histogram, genre
// distribution and goal progress.
package stats

import (
	"fmt"
	"sync"
	"time"

	"booktrail/internal/entities"
	"booktrail/internal/goals"
)

// Number of in-progress books listed in a snapshot.
const currentlyReadingLimit = 5

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// BookStore provides the narrow reads the aggregator needs.
type BookStore interface {
	CountFinishedInYear(year int) (int64, error)
	CountCurrentlyReading() (int64, error)
	ListCurrentlyReading(limit int) ([]entities.Book, error)
	FinishedPageCounts() ([]int, error)
	FinishedGenres() ([]string, error)
	FinishedDatesInYear(year int) ([]time.Time, error)
}

// GoalStore looks up the yearly reading goal.
type GoalStore interface {
	GetByYear(year int) (*entities.ReadingGoal, error)
}

// MonthCount is one slot of the monthly histogram.
type MonthCount struct {
	Name  string `json:"name"`
	Books int    `json:"books"`
}

// GenreCount is one entry of the genre distribution.
type GenreCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Snapshot is the fully aggregated statistics result for one year,
// recomputed on every request.
type Snapshot struct {
	BooksThisYear         int             `json:"booksThisYear"`
	CurrentlyReading      int             `json:"currentlyReading"`
	CurrentlyReadingBooks []entities.Book `json:"currentlyReadingBooks"`
	TotalPagesRead        int             `json:"totalPagesRead"`
	FavoriteGenre         string          `json:"favoriteGenre"`
	MonthlyData           []MonthCount    `json:"monthlyData"`
	GenreStats            []GenreCount    `json:"genreStats"`
	ReadingGoal           int             `json:"readingGoal"`
	GoalProgress          float64         `json:"goalProgress"`
}

// Aggregator computes statistics snapshots from the record store.
type Aggregator struct {
	books BookStore
	goals GoalStore
}

// NewAggregator creates a new statistics aggregator.
func NewAggregator(books BookStore, goals GoalStore) *Aggregator {
	return &Aggregator{books: books, goals: goals}
}

// Compute builds the snapshot for a calendar year. The underlying reads
// are independent and run concurrently; if any one fails the whole
// snapshot fails, since partial statistics would be misleading.
func (a *Aggregator) Compute(year int) (*Snapshot, error) {
	var (
		finishedCount int64
		readingCount  int64
		readingBooks  []entities.Book
		pageCounts    []int
		genres        []string
		finishedDates []time.Time
		goal          *entities.ReadingGoal
	)

	tasks := map[string]func() error{
		"finished count": func() (err error) {
			finishedCount, err = a.books.CountFinishedInYear(year)
			return err
		},
		"currently reading count": func() (err error) {
			readingCount, err = a.books.CountCurrentlyReading()
			return err
		},
		"currently reading list": func() (err error) {
			readingBooks, err = a.books.ListCurrentlyReading(currentlyReadingLimit)
			return err
		},
		"page counts": func() (err error) {
			pageCounts, err = a.books.FinishedPageCounts()
			return err
		},
		"genres": func() (err error) {
			genres, err = a.books.FinishedGenres()
			return err
		},
		"finished dates": func() (err error) {
			finishedDates, err = a.books.FinishedDatesInYear(year)
			return err
		},
		"reading goal": func() (err error) {
			goal, err = a.goals.GetByYear(year)
			return err
		},
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(tasks))
	for name, run := range tasks {
		wg.Add(1)
		go func(name string, run func() error) {
			defer wg.Done()
			if err := run(); err != nil {
				errs <- fmt.Errorf("%s: %w", name, err)
			}
		}(name, run)
	}
	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return nil, fmt.Errorf("aggregate statistics: %w", err)
	}

	totalPages := 0
	for _, pages := range pageCounts {
		totalPages += pages
	}

	genreStats := buildGenreStats(genres)

	target := 0
	if goal != nil {
		target = goal.TargetBooks
	}

	if readingBooks == nil {
		readingBooks = []entities.Book{}
	}

	return &Snapshot{
		BooksThisYear:         int(finishedCount),
		CurrentlyReading:      int(readingCount),
		CurrentlyReadingBooks: readingBooks,
		TotalPagesRead:        totalPages,
		FavoriteGenre:         favoriteGenre(genreStats),
		MonthlyData:           buildMonthlyData(finishedDates),
		GenreStats:            genreStats,
		ReadingGoal:           target,
		GoalProgress:          goals.Progress(target, int(finishedCount)),
	}, nil
}

// buildGenreStats counts genre occurrences, keeping first-encountered
// order.
func buildGenreStats(genres []string) []GenreCount {
	counts := make(map[string]int, len(genres))
	order := make([]string, 0, len(genres))
	for _, genre := range genres {
		if _, seen := counts[genre]; !seen {
			order = append(order, genre)
		}
		counts[genre]++
	}

	stats := make([]GenreCount, 0, len(order))
	for _, name := range order {
		stats = append(stats, GenreCount{Name: name, Value: counts[name]})
	}
	return stats
}

// favoriteGenre picks the genre with the highest count. Ties resolve to
// the first-encountered genre; "N/A" when there is no genre data.
func favoriteGenre(stats []GenreCount) string {
	if len(stats) == 0 {
		return "N/A"
	}
	best := stats[0]
	for _, s := range stats[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	return best.Name
}

// buildMonthlyData buckets finished dates into a fixed 12-slot histogram
// keyed by calendar month.
func buildMonthlyData(dates []time.Time) []MonthCount {
	var counts [12]int
	for _, d := range dates {
		counts[int(d.Month())-1]++
	}

	data := make([]MonthCount, 12)
	for i, name := range monthNames {
		data[i] = MonthCount{Name: name, Books: counts[i]}
	}
	return data
}
