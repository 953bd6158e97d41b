package professor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"esursi/internal/adapters/storage"
	domain "esursi/internal/domain/professor"
)

// professorColumns is the canonical column order shared by every SELECT.
const professorColumns = "id, name, sex, matricule, birthplace, birth_date, grade, " +
	"defense_country, defense_university, equivalence_number, equivalence_decree, " +
	"equivalence_docs, defense_date, diploma_type, affiliated_university, email, " +
	"phone, decree_number, institutional_bonus, base_salary, has_diploma, photo, " +
	"diploma_copy, thesis_copies, thesis_subject, comment, confirmed, created_at"

// createdAtFormat keeps a fixed-width fractional second so stored
// timestamps sort lexically.
const createdAtFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new professor store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Insert persists a new record.
// PRE: p has been validated by the caller
// POST: Returns the assigned identifier; creation timestamp is set once here
func (s *SQLiteStore) Insert(ctx context.Context, p domain.Professor) (int64, error) {
	query := `INSERT INTO professor (
		name, sex, matricule, birthplace, birth_date, grade,
		defense_country, defense_university, equivalence_number, equivalence_decree,
		equivalence_docs, defense_date, diploma_type, affiliated_university, email,
		phone, decree_number, institutional_bonus, base_salary, has_diploma, photo,
		diploma_copy, thesis_copies, thesis_subject, comment, confirmed, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	confirmed := 0
	if p.Confirmed {
		confirmed = 1
	}
	result, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Sex,
		p.Matricule,
		p.Birthplace,
		p.BirthDate,
		p.Grade,
		p.DefenseCountry,
		p.DefenseUniversity,
		nullable(p.EquivalenceNumber),
		nullable(p.EquivalenceDecree),
		nullable(p.EquivalenceDocs),
		p.DefenseDate,
		p.DiplomaType,
		p.AffiliatedUniversity,
		nullable(p.Email),
		p.Phone,
		p.DecreeNumber,
		p.InstitutionalBonus,
		p.BaseSalary,
		nullable(p.HasDiploma),
		nullable(p.Photo),
		nullable(p.DiplomaCopy),
		nullable(p.ThesisCopies),
		nullable(p.ThesisSubject),
		p.Comment,
		confirmed,
		time.Now().UTC().Format(createdAtFormat),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return result.LastInsertId()
}

// GetAll retrieves all records, newest first.
// POST: Returns the full unfiltered set unless a university filter is given
func (s *SQLiteStore) GetAll(ctx context.Context, filter ListFilter) ([]domain.Professor, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString("SELECT " + professorColumns + " FROM professor")
	if filter.University != "" {
		queryBuilder.WriteString(" WHERE affiliated_university = ?")
		args = append(args, filter.University)
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")

	return s.queryMany(ctx, queryBuilder.String(), args...)
}

// GetByID retrieves one record by its identifier.
// POST: Returns the record or professor.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Professor, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+professorColumns+" FROM professor WHERE id = ?", id)
	entity, err := scanProfessor(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Professor{}, domain.ErrNotFound
	}
	return entity, err
}

// Search retrieves records whose name, matricule or phone contains term.
// POST: Returns matches newest first; empty slice when nothing matches
func (s *SQLiteStore) Search(ctx context.Context, term string) ([]domain.Professor, error) {
	if term == "" {
		return s.GetAll(ctx, ListFilter{})
	}
	pattern := "%" + escapeLike(term) + "%"
	query := "SELECT " + professorColumns + " FROM professor" +
		" WHERE name LIKE ? ESCAPE '\\' OR matricule LIKE ? ESCAPE '\\' OR phone LIKE ? ESCAPE '\\'" +
		" ORDER BY created_at DESC, id DESC"
	return s.queryMany(ctx, query, pattern, pattern, pattern)
}

// Update applies a sparse set of fields to one record.
// PRE: u has been validated and is non-empty
// POST: Only supplied columns change; id and created_at never change
func (s *SQLiteStore) Update(ctx context.Context, id int64, u domain.Update) error {
	cols, vals := u.Fields()
	if len(cols) == 0 {
		return fmt.Errorf("no fields to update")
	}
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = col + " = ?"
	}
	vals = append(vals, id)

	result, err := s.db.ExecContext(ctx,
		"UPDATE professor SET "+strings.Join(sets, ", ")+" WHERE id = ?", vals...)
	if err != nil {
		return mapConstraint(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByID removes one record.
// POST: Returns true only when a row was actually removed
func (s *SQLiteStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM professor WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM professor").Scan(&count)
	return count, err
}

// DistinctUniversities returns the sorted distinct affiliated universities.
func (s *SQLiteStore) DistinctUniversities(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT affiliated_university FROM professor"+
			" WHERE affiliated_university IS NOT NULL AND affiliated_university != ''"+
			" ORDER BY affiliated_university")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}

func (s *SQLiteStore) queryMany(ctx context.Context, query string, args ...any) ([]domain.Professor, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.Professor{}
	for rows.Next() {
		entity, err := scanProfessor(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanProfessor extracts a Professor from a row scanner function.
func scanProfessor(scan func(dest ...any) error) (domain.Professor, error) {
	var entity domain.Professor
	var equivalenceNumber, equivalenceDecree, equivalenceDocs sql.NullString
	var email, hasDiploma, photo, diplomaCopy, thesisCopies, thesisSubject sql.NullString
	var confirmed int
	var createdAt string

	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Sex,
		&entity.Matricule,
		&entity.Birthplace,
		&entity.BirthDate,
		&entity.Grade,
		&entity.DefenseCountry,
		&entity.DefenseUniversity,
		&equivalenceNumber,
		&equivalenceDecree,
		&equivalenceDocs,
		&entity.DefenseDate,
		&entity.DiplomaType,
		&entity.AffiliatedUniversity,
		&email,
		&entity.Phone,
		&entity.DecreeNumber,
		&entity.InstitutionalBonus,
		&entity.BaseSalary,
		&hasDiploma,
		&photo,
		&diplomaCopy,
		&thesisCopies,
		&thesisSubject,
		&entity.Comment,
		&confirmed,
		&createdAt,
	)
	if err != nil {
		return domain.Professor{}, err
	}
	entity.EquivalenceNumber = equivalenceNumber.String
	entity.EquivalenceDecree = equivalenceDecree.String
	entity.EquivalenceDocs = equivalenceDocs.String
	entity.Email = email.String
	entity.HasDiploma = hasDiploma.String
	entity.Photo = photo.String
	entity.DiplomaCopy = diplomaCopy.String
	entity.ThesisCopies = thesisCopies.String
	entity.ThesisSubject = thesisSubject.String
	entity.Confirmed = confirmed != 0
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

// nullable maps an empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// escapeLike escapes LIKE wildcards in a user-supplied search term.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}

// mapConstraint converts SQLite unique-violation errors into the domain
// ConstraintError naming the offending column.
func mapConstraint(err error) error {
	const marker = "UNIQUE constraint failed: professor."
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return err
	}
	col := msg[i+len(marker):]
	if j := strings.IndexAny(col, " ,("); j >= 0 {
		col = col[:j]
	}
	return &domain.ConstraintError{Column: col}
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
