package sqlite

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/vinaysurtani/Trivia-API/data"
	repo "github.com/vinaysurtani/Trivia-API/repository"
)

func newTestRepository(t *testing.T) *repository {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "trivia_test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func seedQuestions(t *testing.T, r *repository, categoryID int64, n int) []int64 {
	t.Helper()
	ids := make([]int64, 0, n)
	for i := 1; i <= n; i++ {
		question := &data.Question{
			Question:   fmt.Sprintf("What is %d?", i),
			Answer:     fmt.Sprintf("%d", i),
			Difficulty: 1,
			Category:   categoryID,
		}
		if err := r.CreateQuestion(question); err != nil {
			t.Fatalf("CreateQuestion: %v", err)
		}
		if question.ID == 0 {
			t.Fatalf("CreateQuestion did not assign an id")
		}
		ids = append(ids, question.ID)
	}
	return ids
}

func TestCategories(t *testing.T) {
	r := newTestRepository(t)

	categories, err := r.GetAllCategories()
	if err != nil {
		t.Fatalf("GetAllCategories: %v", err)
	}
	if len(categories) != 0 {
		t.Fatalf("expected empty store, got %d categories", len(categories))
	}

	math := &data.Category{Type: "Math"}
	if err := r.CreateCategory(math); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	got, err := r.GetCategory(math.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got.Type != "Math" {
		t.Errorf("GetCategory type = %q, want %q", got.Type, "Math")
	}

	if _, err := r.GetCategory(999); !errors.Is(err, repo.ErrRecordNotFound) {
		t.Errorf("GetCategory(999) error = %v, want ErrRecordNotFound", err)
	}
	if _, err := r.GetCategory(-1); !errors.Is(err, repo.ErrRecordNotFound) {
		t.Errorf("GetCategory(-1) error = %v, want ErrRecordNotFound", err)
	}
}

func TestGetAllQuestionsPagination(t *testing.T) {
	r := newTestRepository(t)
	ids := seedQuestions(t, r, 1, 12)

	page1, metadata, err := r.GetAllQuestions(data.Filters{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("GetAllQuestions page 1: %v", err)
	}
	if len(page1) != 10 {
		t.Errorf("page 1 length = %d, want 10", len(page1))
	}
	if metadata.TotalRecords != 12 {
		t.Errorf("total records = %d, want 12", metadata.TotalRecords)
	}

	page2, _, err := r.GetAllQuestions(data.Filters{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("GetAllQuestions page 2: %v", err)
	}
	if len(page2) != 2 {
		t.Fatalf("page 2 length = %d, want 2", len(page2))
	}
	if page2[0].ID != ids[10] || page2[1].ID != ids[11] {
		t.Errorf("page 2 ids = [%d %d], want [%d %d]", page2[0].ID, page2[1].ID, ids[10], ids[11])
	}

	page5, _, err := r.GetAllQuestions(data.Filters{Page: 5, PageSize: 10})
	if err != nil {
		t.Fatalf("GetAllQuestions page 5: %v", err)
	}
	if len(page5) != 0 {
		t.Errorf("page 5 length = %d, want 0", len(page5))
	}
}

func TestDeleteQuestionTwice(t *testing.T) {
	r := newTestRepository(t)
	ids := seedQuestions(t, r, 1, 1)

	if err := r.DeleteQuestion(ids[0]); err != nil {
		t.Fatalf("first DeleteQuestion: %v", err)
	}
	if err := r.DeleteQuestion(ids[0]); !errors.Is(err, repo.ErrRecordNotFound) {
		t.Errorf("second DeleteQuestion error = %v, want ErrRecordNotFound", err)
	}
	if _, err := r.GetQuestion(ids[0]); !errors.Is(err, repo.ErrRecordNotFound) {
		t.Errorf("GetQuestion after delete error = %v, want ErrRecordNotFound", err)
	}
}

func TestSearchQuestionsCaseInsensitive(t *testing.T) {
	r := newTestRepository(t)

	question := &data.Question{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, Category: 1}
	if err := r.CreateQuestion(question); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	seedQuestions(t, r, 1, 3)

	matches, err := r.SearchQuestions("mona")
	if err != nil {
		t.Fatalf("SearchQuestions: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != question.ID {
		t.Fatalf("SearchQuestions(mona) = %d matches, want the Mona Lisa question", len(matches))
	}

	matches, err = r.SearchQuestions("no such text")
	if err != nil {
		t.Fatalf("SearchQuestions: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("SearchQuestions miss = %d matches, want 0", len(matches))
	}
}

func TestGetAllQuestionsForCategory(t *testing.T) {
	r := newTestRepository(t)
	seedQuestions(t, r, 1, 3)
	seedQuestions(t, r, 2, 2)

	inCategory, err := r.GetAllQuestionsForCategory(2)
	if err != nil {
		t.Fatalf("GetAllQuestionsForCategory(2): %v", err)
	}
	if len(inCategory) != 2 {
		t.Errorf("category 2 questions = %d, want 2", len(inCategory))
	}
	for _, q := range inCategory {
		if q.Category != 2 {
			t.Errorf("question %d category = %d, want 2", q.ID, q.Category)
		}
	}

	all, err := r.GetAllQuestionsForCategory(0)
	if err != nil {
		t.Fatalf("GetAllQuestionsForCategory(0): %v", err)
	}
	if len(all) != 5 {
		t.Errorf("any-category questions = %d, want 5", len(all))
	}

	none, err := r.GetAllQuestionsForCategory(99)
	if err != nil {
		t.Fatalf("GetAllQuestionsForCategory(99): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown category questions = %d, want 0", len(none))
	}
}
