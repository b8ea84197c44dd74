package repository

import (
	"errors"
	"strings"
	"testing"

	"github.com/taskhive/taskhive-go/internal/model"
)

func TestNewTaskRepository(t *testing.T) {
	repo := NewTaskRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil TaskRepository")
	}
}

func TestTaskSentinelErrors(t *testing.T) {
	if ErrTaskNotFound.Error() != "task not found" {
		t.Fatalf("unexpected error message: %s", ErrTaskNotFound.Error())
	}
	if ErrInvalidCategoryRef.Error() != "invalid category reference" {
		t.Fatalf("unexpected error message: %s", ErrInvalidCategoryRef.Error())
	}
}

func TestIsForeignKeyError(t *testing.T) {
	if isForeignKeyError(nil) {
		t.Fatal("nil error should not be a foreign key error")
	}
	if isForeignKeyError(ErrTaskNotFound) {
		t.Fatal("ErrTaskNotFound should not be a foreign key error")
	}
	mysqlErr := errors.New(`Error 1452: Cannot add or update a child row: a foreign key constraint fails`)
	if !isForeignKeyError(mysqlErr) {
		t.Fatal("expected MySQL 1452 message to be a foreign key error")
	}
}

func TestListTasksQuery_NoFilter(t *testing.T) {
	query, args := listTasksQuery("user-1", model.TaskFilter{})

	if !strings.Contains(query, "WHERE t.user_id = ?") {
		t.Errorf("query missing ownership predicate: %q", query)
	}
	if strings.Contains(query, "AND") {
		t.Errorf("unfiltered query should carry no extra predicates: %q", query)
	}
	if len(args) != 1 || args[0] != "user-1" {
		t.Errorf("expected args [user-1], got %v", args)
	}
}

func TestListTasksQuery_FiltersComposeWithAnd(t *testing.T) {
	query, args := listTasksQuery("user-1", model.TaskFilter{
		Status:       model.StatusPending,
		CategoryName: "Work",
	})

	if !strings.Contains(query, "AND BINARY t.status = ?") {
		t.Errorf("query missing status predicate: %q", query)
	}
	if !strings.Contains(query, "AND BINARY c.name = ?") {
		t.Errorf("query missing category predicate: %q", query)
	}
	if len(args) != 3 || args[0] != "user-1" || args[1] != model.StatusPending || args[2] != "Work" {
		t.Errorf("expected args [user-1 pending Work], got %v", args)
	}
}

func TestListTasksQuery_CategoryFilterIsBinary(t *testing.T) {
	// BINARY keeps the name comparison case-sensitive regardless of the
	// column's collation, so "work" never matches a category named "Work".
	query, _ := listTasksQuery("user-1", model.TaskFilter{CategoryName: "work"})

	if !strings.Contains(query, "BINARY c.name = ?") {
		t.Errorf("category filter must compare under binary collation: %q", query)
	}
}

func TestInsertTaskQueryWritesTimestamps(t *testing.T) {
	if !strings.Contains(insertTaskQuery, "created_at") || !strings.Contains(insertTaskQuery, "updated_at") {
		t.Errorf("insert must write timestamps explicitly so the create response carries them: %q", insertTaskQuery)
	}
}
