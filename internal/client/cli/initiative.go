package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Gilles-knd/galerebuddy/internal/client/models"
)

// Collabs lists every initiative with its status and participant count.
func (a *App) Collabs(ctx context.Context) error {
	initiatives, err := a.api.ListInitiatives(ctx)
	if err != nil {
		return a.fail("Loading initiatives", err)
	}
	if len(initiatives) == 0 {
		printlnFn("No initiatives yet. Propose one on a post with 'propose <postID>'.")
		return nil
	}
	for _, in := range initiatives {
		printlnFn(fmt.Sprintf("%s  %q [%s/%s] %d participant(s)",
			in.ID, in.Title, in.Type, in.Status, len(in.Participants)))
	}
	return nil
}

// ShowCollab prints a single initiative in full.
func (a *App) ShowCollab(ctx context.Context, id string) error {
	in, err := a.api.GetInitiative(ctx, id)
	if err != nil {
		return a.fail("Loading the initiative", err)
	}

	printlnFn(fmt.Sprintf("# %s [%s/%s]", in.Title, in.Type, in.Status))
	if in.Creator != nil {
		printlnFn("proposed by " + in.Creator.Firstname + " " + in.Creator.Name)
	}
	printlnFn(in.Description)
	if in.Deadline != nil {
		printlnFn("Deadline: " + in.Deadline.Format("2006-01-02"))
	}
	if in.Outcome != "" {
		printlnFn("Outcome: " + in.Outcome)
	}
	for _, p := range in.Participants {
		who := p.UserID
		if p.User != nil {
			who = p.User.Firstname + " " + p.User.Name
		}
		printlnFn("  - " + who)
	}
	return nil
}

// Propose creates an initiative attached to the given post.
func (a *App) Propose(ctx context.Context, postID string) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	kind, err := getChoice(a.reader, "Type",
		[]string{
			string(models.InitiativeArticle),
			string(models.InitiativeTraining),
			string(models.InitiativeProject),
			string(models.InitiativeMeeting),
			string(models.InitiativeOther),
		},
		string(models.InitiativeOther), os.Stdout)
	if err != nil {
		return err
	}
	deadlineStr, err := getSimpleText(a.reader, "Deadline YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateInitiativeRequest{
		Title:       title,
		Description: description,
		Type:        models.InitiativeType(kind),
		PostID:      postID,
	}
	if deadlineStr != "" {
		deadline, err := time.Parse("2006-01-02", deadlineStr)
		if err != nil {
			return a.fail("Parsing the deadline", err)
		}
		req.Deadline = &deadline
	}

	in, err := a.api.CreateInitiative(ctx, req)
	if err != nil {
		return a.fail("Proposing", err)
	}
	printlnFn("Proposed: " + in.ID)
	return nil
}

// Join adds the current user to an initiative's participants.
func (a *App) Join(ctx context.Context, id string) error {
	if _, err := a.api.JoinInitiative(ctx, id); err != nil {
		return a.fail("Joining", err)
	}
	printlnFn("Joined.")
	return nil
}
