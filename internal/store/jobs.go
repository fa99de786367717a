package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
)

// StoredJob is a persisted JobRecord plus its row identity.
type StoredJob struct {
	ID        int64            `json:"id"`
	Job       domain.JobRecord `json:"job"`
	CreatedAt string           `json:"created_at"`
}

// sourceIDFor gives every record a stable dedup key: the URL when present,
// otherwise a digest of title/company/location.
func sourceIDFor(j domain.JobRecord) string {
	if u := strings.TrimSpace(j.URL); u != "" {
		return hashString("url:" + u)
	}
	key := strings.ToLower(strings.Join([]string{j.Title, j.Company.Name, j.Location}, "|"))
	return hashString("rec:" + key)
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// InsertJobIfNew writes one record, ignoring duplicates by source id.
func InsertJobIfNew(ctx context.Context, db *sql.DB, j domain.JobRecord) (added bool, err error) {
	reqB, _ := json.Marshal(j.Requirements)
	skillsB, _ := json.Marshal(j.Skills)

	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO job_listings
  (title, company, logo_url, location, description, requirements, skills, url, source, source_id, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?);`,
		j.Title,
		j.Company.Name,
		j.Company.LogoURL,
		j.Location,
		j.Description,
		string(reqB),
		string(skillsB),
		j.URL,
		j.Source,
		sourceIDFor(j),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert job: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

// InsertJobsIfNew persists a batch; one bad row never aborts the rest.
func InsertJobsIfNew(ctx context.Context, db *sql.DB, jobs []domain.JobRecord) (added int, err error) {
	var firstErr error
	for _, j := range jobs {
		ok, e := InsertJobIfNew(ctx, db, j)
		if e != nil {
			if firstErr == nil {
				firstErr = e
			}
			continue
		}
		if ok {
			added++
		}
	}
	return added, firstErr
}

func ListJobs(ctx context.Context, db *sql.DB, limit int) ([]StoredJob, error) {
	if limit <= 0 || limit > 2000 {
		limit = 500
	}

	rows, err := db.QueryContext(ctx, `
SELECT id, title, company, logo_url, location, description, requirements, skills, url, source, created_at
FROM job_listings
ORDER BY created_at DESC, id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredJob{}
	for rows.Next() {
		var sj StoredJob
		var reqJSON, skillsJSON string
		if err := rows.Scan(
			&sj.ID,
			&sj.Job.Title,
			&sj.Job.Company.Name,
			&sj.Job.Company.LogoURL,
			&sj.Job.Location,
			&sj.Job.Description,
			&reqJSON,
			&skillsJSON,
			&sj.Job.URL,
			&sj.Job.Source,
			&sj.CreatedAt,
		); err != nil {
			return nil, err
		}
		sj.Job.Requirements = []string{}
		sj.Job.Skills = []string{}
		_ = json.Unmarshal([]byte(reqJSON), &sj.Job.Requirements)
		_ = json.Unmarshal([]byte(skillsJSON), &sj.Job.Skills)
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func DeleteJob(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM job_listings WHERE id = ?;`, id)
	return err
}
