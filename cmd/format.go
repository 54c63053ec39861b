// ABOUTME: Human-readable formatters shared by the film and user commands
// ABOUTME: One styled line per record, ids first so they can be passed back to commands

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

// releaseYear returns the year part of an ISO date, or "" when absent
func releaseYear(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

func formatID(id int64) string {
	return styles.IDStyle.Render(fmt.Sprintf("#%d", id))
}

// formatFilm renders a film as one line
func formatFilm(f client.Film) string {
	var b strings.Builder
	b.WriteString(formatID(f.ID))
	b.WriteString("  ")
	b.WriteString(styles.ValueStyle.Render(f.Title))
	if y := releaseYear(f.ReleaseDate); y != "" {
		b.WriteString(styles.Subtitle.Render(" (" + y + ")"))
	}
	b.WriteString("  ")
	b.WriteString(styles.RatingBar(f.VoteAverage, 10))
	if f.Director != nil && *f.Director != "" {
		b.WriteString(styles.Subtitle.Render("  dir. " + *f.Director))
	}
	return b.String()
}

// formatPopularMovie renders a popular movie as one line
func formatPopularMovie(m client.PopularMovie) string {
	var b strings.Builder
	b.WriteString(formatID(m.ID))
	b.WriteString("  ")
	b.WriteString(styles.ValueStyle.Render(m.Title))
	if y := releaseYear(m.ReleaseDate); y != "" {
		b.WriteString(styles.Subtitle.Render(" (" + y + ")"))
	}
	b.WriteString("  ")
	b.WriteString(styles.RatingBar(m.VoteAverage, 10))
	if m.Runtime > 0 {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("  %d min", m.Runtime)))
	}
	return b.String()
}

// formatUser renders a user as one line
func formatUser(u client.User) string {
	films := 0
	if u.Wishlist != nil {
		films = len(u.Wishlist.Films)
	}
	return fmt.Sprintf("%s  %s %s  %s",
		formatID(u.ID),
		icons.User,
		styles.ValueStyle.Render(u.Username),
		styles.Subtitle.Render(fmt.Sprintf("%d followers, %d following, %d wished", u.FollowersCount, u.FollowingCount, films)),
	)
}

// writeFilms writes a heading and one line per film, or the empty message
func writeFilms(w io.Writer, heading string, films []client.Film, empty string) {
	if len(films) == 0 {
		fmt.Fprintln(w, styles.Subtitle.Render(empty))
		return
	}
	fmt.Fprintln(w, styles.Title.Render(heading))
	for _, f := range films {
		fmt.Fprintln(w, formatFilm(f))
	}
}
