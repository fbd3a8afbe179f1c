package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Harshavarthini19/campus-connect/internal/models"
	"github.com/Harshavarthini19/campus-connect/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IssueRepo struct{ db *pgxpool.Pool }

func NewIssueRepo(db *pgxpool.Pool) *IssueRepo { return &IssueRepo{db: db} }

const issueCols = `
	i.id, i.title, i.description, i.category, i.priority, i.status,
	i.location_name, i.lat, i.lng, i.reporter_id, i.reporter_name,
	i.is_anonymous, COALESCE(i.assigned_to, ''), i.created_at, i.updated_at`

func scanIssue(row pgx.Row) (*models.Issue, error) {
	var i models.Issue
	err := row.Scan(
		&i.ID, &i.Title, &i.Description, &i.Category, &i.Priority, &i.Status,
		&i.LocationName, &i.Lat, &i.Lng, &i.ReporterID, &i.ReporterName,
		&i.IsAnonymous, &i.AssignedTo, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepo) Create(ctx context.Context, i *models.Issue) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO issues (title, description, category, priority, status,
			location_name, lat, lng, reporter_id, reporter_name, is_anonymous, assigned_to)
		VALUES ($1,$2,$3,$4,'new',$5,$6,$7,$8,$9,$10,$11)
		RETURNING id, status, created_at, updated_at
	`,
		i.Title, i.Description, i.Category, i.Priority,
		i.LocationName, i.Lat, i.Lng, i.ReporterID, i.ReporterName,
		i.IsAnonymous, nullIfEmpty(i.AssignedTo),
	).Scan(&i.ID, &i.Status, &i.CreatedAt, &i.UpdatedAt)
}

func (r *IssueRepo) Get(ctx context.Context, id string) (*models.Issue, error) {
	i, err := scanIssue(r.db.QueryRow(ctx, `SELECT `+issueCols+` FROM issues i WHERE i.id = $1`, id))
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, issue_id, user_id, user_name, content, is_internal, created_at
		FROM comments
		WHERE issue_id = $1
		ORDER BY created_at ASC, id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.IssueID, &c.UserID, &c.UserName, &c.Content, &c.IsInternal, &c.CreatedAt); err != nil {
			return nil, err
		}
		i.Comments = append(i.Comments, c)
	}
	return i, rows.Err()
}

// List returns a page of issues without their comment threads; Get
// loads the thread for a single issue.
func (r *IssueRepo) List(ctx context.Context, f repository.IssueFilter) ([]models.Issue, error) {
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	whereSQL, args := buildIssueWhere(f)
	sortCol := sanitizeSort(f.Sort, "updated_at")
	sortOrd := sanitizeOrder(f.Order, "desc")

	sql := fmt.Sprintf(`
		SELECT %s
		FROM issues i
		%s
		ORDER BY i.%s %s
		LIMIT $%d OFFSET $%d
	`, issueCols, whereSQL, sortCol, sortOrd, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *i)
	}
	return out, rows.Err()
}

func (r *IssueRepo) Count(ctx context.Context, f repository.IssueFilter) (int, error) {
	whereSQL, args := buildIssueWhere(f)
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM issues i `+whereSQL, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *IssueRepo) ListByReporter(ctx context.Context, reporterID string) ([]models.Issue, error) {
	return r.List(ctx, repository.IssueFilter{Reporter: reporterID, Limit: 200})
}

func (r *IssueRepo) Update(ctx context.Context, id string, p repository.IssuePatch) (*models.Issue, error) {
	sets := []string{"updated_at = now()"}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+itoa(len(args)))
	}
	if p.Title != nil {
		add("title", strings.TrimSpace(*p.Title))
	}
	if p.Description != nil {
		add("description", strings.TrimSpace(*p.Description))
	}
	if p.Category != nil {
		add("category", *p.Category)
	}
	if p.Priority != nil {
		add("priority", *p.Priority)
	}
	if p.Status != nil {
		add("status", *p.Status)
	}
	if p.AssignedTo != nil {
		add("assigned_to", nullIfEmpty(*p.AssignedTo))
	}

	args = append(args, id)
	sql := `UPDATE issues SET ` + strings.Join(sets, ", ") + ` WHERE id = $` + itoa(len(args))

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if ct.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes the issue; its comments go with it (ON DELETE CASCADE).
func (r *IssueRepo) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *IssueRepo) AddComment(ctx context.Context, issueID string, c *models.Comment) error {
	ct, err := r.db.Exec(ctx, `UPDATE issues SET updated_at = now() WHERE id = $1`, issueID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	c.IssueID = issueID
	return r.db.QueryRow(ctx, `
		INSERT INTO comments (issue_id, user_id, user_name, content, is_internal)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at
	`, issueID, c.UserID, c.UserName, c.Content, c.IsInternal).Scan(&c.ID, &c.CreatedAt)
}

// buildIssueWhere composes WHERE clause and args for the list filters.
func buildIssueWhere(f repository.IssueFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if s := strings.TrimSpace(f.Q); s != "" {
		p := "%" + s + "%"
		args = append(args, p, p)
		clauses = append(clauses, "(i.title ILIKE $"+itoa(len(args)-1)+" OR i.description ILIKE $"+itoa(len(args))+")")
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		args = append(args, s)
		clauses = append(clauses, "i.status = $"+itoa(len(args)))
	}
	if p := strings.TrimSpace(f.Priority); p != "" {
		args = append(args, p)
		clauses = append(clauses, "i.priority = $"+itoa(len(args)))
	}
	if c := strings.TrimSpace(f.Category); c != "" {
		args = append(args, c)
		clauses = append(clauses, "i.category = $"+itoa(len(args)))
	}
	if a := strings.TrimSpace(f.Assignee); a != "" {
		args = append(args, a)
		clauses = append(clauses, "i.assigned_to = $"+itoa(len(args)))
	}
	if rep := strings.TrimSpace(f.Reporter); rep != "" {
		args = append(args, rep)
		clauses = append(clauses, "i.reporter_id = $"+itoa(len(args))+"::uuid")
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func sanitizeSort(s, def string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created_at", "updated_at", "priority":
		return strings.ToLower(strings.TrimSpace(s))
	default:
		return def
	}
}

func sanitizeOrder(o, def string) string {
	switch strings.ToLower(strings.TrimSpace(o)) {
	case "asc", "desc":
		return strings.ToLower(strings.TrimSpace(o))
	default:
		return def
	}
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func itoa(i int) string { return strconv.Itoa(i) }
