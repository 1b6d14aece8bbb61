package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/dashapp/internal/client/forms"
	"github.com/dmitrijs2005/dashapp/internal/client/services"
	"github.com/dmitrijs2005/dashapp/internal/common"
)

// List prints the visible tasks, i.e. the cached list after search and
// status filtering.
func (a *App) List(ctx context.Context) error {
	if err := a.tasks.Load(ctx); err != nil {
		printlnFn("Could not load tasks:", err.Error())
		return err
	}

	visible := a.tasks.Visible()
	if len(visible) == 0 {
		printlnFn("No tasks found")
		return nil
	}

	search, filter := a.tasks.Filters()
	if search != "" || filter != services.StatusFilterAll {
		printlnFn(fmt.Sprintf("Filters: search=%q status=%s", search, filter))
	}

	for _, t := range visible {
		printlnFn(fmt.Sprintf("[%d] %s (%s) budget=%d", t.ID, t.Title, t.Status, t.Budget))
	}
	return nil
}

func (a *App) promptTaskForm(defaults *forms.TaskForm) (*forms.TaskForm, error) {
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return nil, err
	}
	if title == "" && defaults != nil {
		title = defaults.Title
	}

	description, err := GetSimpleText(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return nil, err
	}
	if description == "" && defaults != nil {
		description = defaults.Description
	}

	status, err := GetSimpleText(a.reader,
		fmt.Sprintf("Enter status (%s)", strings.Join(common.TaskStatuses, "/")), a.out)
	if err != nil {
		return nil, err
	}
	if status == "" && defaults != nil {
		status = defaults.Status
	}

	budgetText, err := GetSimpleText(a.reader, "Enter budget", a.out)
	if err != nil {
		return nil, err
	}

	var budget int64
	if budgetText != "" {
		budget, err = strconv.ParseInt(budgetText, 10, 64)
		if err != nil {
			printlnFn("Budget must be a number")
			return nil, err
		}
	} else if defaults != nil {
		budget = defaults.Budget
	}

	form := &forms.TaskForm{Title: title, Description: description, Status: status, Budget: budget}
	if err := forms.Validate(*form); err != nil {
		printlnFn(err.Error())
		return nil, err
	}
	return form, nil
}

func (a *App) AddTask(ctx context.Context) error {
	form, err := a.promptTaskForm(nil)
	if err != nil {
		return err
	}

	if err := a.tasks.Create(ctx, form.Title, form.Description, form.Status, form.Budget); err != nil {
		printlnFn("Could not create task:", err.Error())
		return err
	}

	printlnFn("Task created")
	return nil
}

func (a *App) promptTaskID() (int64, error) {
	text, err := GetSimpleText(a.reader, "Enter task id", a.out)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		printlnFn("Task id must be a number")
		return 0, err
	}
	return id, nil
}

func (a *App) EditTask(ctx context.Context) error {
	id, err := a.promptTaskID()
	if err != nil {
		return err
	}

	var defaults *forms.TaskForm
	for _, t := range a.tasks.Visible() {
		if t.ID == id {
			defaults = &forms.TaskForm{Title: t.Title, Description: t.Description, Status: t.Status, Budget: t.Budget}
			break
		}
	}

	printlnFn("Leave a field empty to keep the current value")
	form, err := a.promptTaskForm(defaults)
	if err != nil {
		return err
	}

	if err := a.tasks.Update(ctx, id, form.Title, form.Description, form.Status, form.Budget); err != nil {
		printlnFn("Could not update task:", err.Error())
		return err
	}

	printlnFn("Task updated")
	return nil
}

func (a *App) DeleteTask(ctx context.Context) error {
	id, err := a.promptTaskID()
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete task %d? (y/n)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.tasks.Delete(ctx, id); err != nil {
		printlnFn("Could not delete task:", err.Error())
		return err
	}

	printlnFn("Task deleted")
	return nil
}

func (a *App) Search(ctx context.Context) error {
	term, err := GetSimpleText(a.reader, "Enter search term (empty to clear)", a.out)
	if err != nil {
		return err
	}

	a.tasks.SetSearchTerm(term)
	return a.List(ctx)
}

func (a *App) Filter(ctx context.Context) error {
	status, err := GetSimpleText(a.reader,
		fmt.Sprintf("Enter status filter (%s/%s)", services.StatusFilterAll, strings.Join(common.TaskStatuses, "/")), a.out)
	if err != nil {
		return err
	}
	if status == "" {
		status = services.StatusFilterAll
	}

	if err := a.tasks.SetStatusFilter(status); err != nil {
		printlnFn("Unknown status:", status)
		return err
	}
	return a.List(ctx)
}
