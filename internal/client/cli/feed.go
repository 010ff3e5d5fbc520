package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Gilles-knd/galerebuddy/internal/client/models"
)

// printPostLine renders one feed row: id, title, author and counters.
func printPostLine(p models.Post) {
	author := p.AuthorID
	if p.Author != nil {
		author = p.Author.Firstname + " " + p.Author.Name
	}
	line := fmt.Sprintf("%s  %q by %s", p.ID, p.Title, author)
	if p.Counts != nil {
		line += fmt.Sprintf(" (%d comments, %d reactions)", p.Counts.Comments, p.Counts.Reactions)
	}
	printlnFn(line)
}

// Feed lists every post, newest first as served.
func (a *App) Feed(ctx context.Context) error {
	posts, err := a.api.ListPosts(ctx)
	if err != nil {
		return a.fail("Loading the feed", err)
	}
	if len(posts) == 0 {
		printlnFn("The feed is empty. Be the first: type 'post'.")
		return nil
	}
	for _, p := range posts {
		printPostLine(p)
	}
	return nil
}

// Trending lists the currently trending posts.
func (a *App) Trending(ctx context.Context) error {
	posts, err := a.api.TrendingPosts(ctx)
	if err != nil {
		return a.fail("Loading trending posts", err)
	}
	for _, p := range posts {
		printPostLine(p)
	}
	return nil
}

// ShowPost prints a single post in full.
func (a *App) ShowPost(ctx context.Context, id string) error {
	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		return a.fail("Loading the post", err)
	}

	printlnFn("# " + p.Title)
	if p.Author != nil {
		printlnFn(fmt.Sprintf("by %s %s, %s", p.Author.Firstname, p.Author.Name, p.CreatedAt.Format("2006-01-02")))
	}
	if len(p.Tags) > 0 {
		names := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			names[i] = t.Name
		}
		printlnFn("Tags: " + strings.Join(names, ", "))
	}
	printlnFn("\nProblem:\n" + p.Problem)
	if p.Solution != "" {
		printlnFn("\nSolution:\n" + p.Solution)
	}
	printlnFn("\nAdvice:\n" + p.Advice)
	if p.Lesson != "" {
		printlnFn("\nLesson:\n" + p.Lesson)
	}
	return nil
}

// NewPost collects a war-story interactively and publishes it.
func (a *App) NewPost(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	problem, err := getMultiline(a.reader, "What went wrong?", os.Stdout)
	if err != nil {
		return err
	}
	solution, err := getMultiline(a.reader, "How did you fix it? (optional)", os.Stdout)
	if err != nil {
		return err
	}
	advice, err := getMultiline(a.reader, "Your advice", os.Stdout)
	if err != nil {
		return err
	}
	lesson, err := getSimpleText(a.reader, "Lesson learned (optional)", os.Stdout)
	if err != nil {
		return err
	}
	tagLine, err := getSimpleText(a.reader, "Tags, comma-separated (optional)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.api.CreatePost(ctx, models.CreatePostRequest{
		Title:    title,
		Problem:  problem,
		Solution: solution,
		Advice:   advice,
		Lesson:   lesson,
		Tags:     splitTags(tagLine),
	})
	if err != nil {
		return a.fail("Publishing", err)
	}
	printlnFn("Published: " + post.ID)
	return nil
}

// EditPost prompts for replacement fields; an empty answer keeps the
// current value by omitting the field from the request.
func (a *App) EditPost(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	solution, err := getMultiline(a.reader, "New solution (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	lesson, err := getSimpleText(a.reader, "New lesson (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	post, err := a.api.UpdatePost(ctx, id, models.UpdatePostRequest{
		Title:    title,
		Solution: solution,
		Lesson:   lesson,
	})
	if err != nil {
		return a.fail("Updating", err)
	}
	printlnFn("Updated: " + post.ID)
	return nil
}

// DeletePost removes a post after a confirmation prompt.
func (a *App) DeletePost(ctx context.Context, id string) error {
	answer, err := getChoice(a.reader, "Delete post "+id+"?", []string{"yes", "no"}, "no", os.Stdout)
	if err != nil || answer != "yes" {
		return err
	}
	if err := a.api.DeletePost(ctx, id); err != nil {
		return a.fail("Deleting", err)
	}
	printlnFn("Deleted.")
	return nil
}

// Comments lists the comments of a post.
func (a *App) Comments(ctx context.Context, id string) error {
	comments, err := a.api.ListComments(ctx, id)
	if err != nil {
		return a.fail("Loading comments", err)
	}
	if len(comments) == 0 {
		printlnFn("No comments yet.")
		return nil
	}
	for _, c := range comments {
		author := c.AuthorID
		if c.Author != nil {
			author = c.Author.Firstname
		}
		printlnFn(fmt.Sprintf("[%s] %s: %s", c.CreatedAt.Format("2006-01-02 15:04"), author, c.Content))
	}
	return nil
}

// AddComment posts a comment on the given post.
func (a *App) AddComment(ctx context.Context, id string) error {
	content, err := getMultiline(a.reader, "Your comment", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := a.api.AddComment(ctx, id, models.CreateCommentRequest{Content: content}); err != nil {
		return a.fail("Commenting", err)
	}
	printlnFn("Comment added.")
	return nil
}

// React records a reaction on the given post.
func (a *App) React(ctx context.Context, id string) error {
	kind, err := getChoice(a.reader, "Reaction",
		[]string{string(models.ReactionLike), string(models.ReactionLaugh), string(models.ReactionCry)},
		string(models.ReactionLike), os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateReactionRequest{React: models.ReactionKind(kind)}
	if u := a.session.CurrentUser(); u != nil {
		req.UserID = u.ID
	}
	if _, err := a.api.AddReaction(ctx, id, req); err != nil {
		return a.fail("Reacting", err)
	}
	printlnFn("Reaction added.")
	return nil
}

// Tags lists all known tags.
func (a *App) Tags(ctx context.Context) error {
	tags, err := a.api.ListTags(ctx)
	if err != nil {
		return a.fail("Loading tags", err)
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	printlnFn(strings.Join(names, ", "))
	return nil
}

// splitTags turns "a, b ,c" into ["a","b","c"], dropping empties.
func splitTags(line string) []string {
	if line == "" {
		return nil
	}
	parts := strings.Split(line, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
