package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dtnitsch/post-theme-analyzer/models"
)

const postColumns = "row_index, content, fields, themes, keyword_count, language"

// InsertPosts stores annotated posts in a single transaction.
func (db *DB) InsertPosts(posts []models.Post) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after Commit

	stmt, err := tx.Prepare(`
		INSERT INTO posts (` + postColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range posts {
		fields, err := json.Marshal(p.Fields)
		if err != nil {
			return fmt.Errorf("failed to encode fields for row %d: %w", p.Index, err)
		}
		counts := p.KeywordCount
		if counts == nil {
			counts = models.NewKeywordCounts()
		}
		keywordCount, err := json.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to encode keyword count for row %d: %w", p.Index, err)
		}

		var language sql.NullString
		if p.Language != "" {
			language = sql.NullString{String: p.Language, Valid: true}
		}

		if _, err := stmt.Exec(p.Index, p.Content, string(fields), p.Themes, string(keywordCount), language); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", p.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit posts: %w", err)
	}
	return nil
}

// PostsByTheme returns posts whose theme label contains theme as a
// substring, in input order.
func (db *DB) PostsByTheme(theme string) ([]models.Post, error) {
	return db.queryPosts(`WHERE instr(themes, ?) > 0`, theme)
}

// MultiThemePosts returns posts whose label holds more than one theme entry.
func (db *DB) MultiThemePosts() ([]models.Post, error) {
	return db.queryPosts(`WHERE instr(themes, ?) > 0`, models.ThemeSeparator)
}

// AllPosts returns every stored post in input order.
func (db *DB) AllPosts() ([]models.Post, error) {
	return db.queryPosts("")
}

// CountByTheme returns how many posts PostsByTheme would return.
func (db *DB) CountByTheme(theme string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM posts WHERE instr(themes, ?) > 0`, theme).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts for theme %q: %w", theme, err)
	}
	return n, nil
}

// MatchCounts returns the number of posts with and without a theme.
func (db *DB) MatchCounts() (matched, unmatched int, err error) {
	err = db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN themes != ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN themes = ? THEN 1 ELSE 0 END), 0)
		FROM posts
	`, models.NoThemeLabel, models.NoThemeLabel).Scan(&matched, &unmatched)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return matched, unmatched, nil
}

// LanguageCounts returns post counts per detected language.
func (db *DB) LanguageCounts() (map[string]int, error) {
	rows, err := db.Query(`
		SELECT language, COUNT(*) FROM posts
		WHERE language IS NOT NULL
		GROUP BY language
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count languages: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var lang string
		var n int
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, fmt.Errorf("failed to scan language count: %w", err)
		}
		counts[lang] = n
	}
	return counts, rows.Err()
}

func (db *DB) queryPosts(where string, args ...interface{}) ([]models.Post, error) {
	rows, err := db.Query(`SELECT `+postColumns+` FROM posts `+where+` ORDER BY row_index`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var (
			p            models.Post
			fields       string
			keywordCount string
			language     sql.NullString
		)
		if err := rows.Scan(&p.Index, &p.Content, &fields, &p.Themes, &keywordCount, &language); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &p.Fields); err != nil {
			return nil, fmt.Errorf("failed to decode fields for row %d: %w", p.Index, err)
		}
		p.KeywordCount = models.NewKeywordCounts()
		if err := json.Unmarshal([]byte(keywordCount), p.KeywordCount); err != nil {
			return nil, fmt.Errorf("failed to decode keyword count for row %d: %w", p.Index, err)
		}
		p.Language = language.String
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}
