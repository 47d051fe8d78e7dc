package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"snapsolve/api/internal/solve"
)

type AnswerRepo struct{ DB *sql.DB }

func NewAnswerRepo(db *sql.DB) *AnswerRepo { return &AnswerRepo{DB: db} }

// EnsureSchema creates the cache table if it does not exist yet.
func (r *AnswerRepo) EnsureSchema(ctx context.Context) error {
	const ddl = `
create table if not exists answers_cache (
	image_hash  text        not null,
	engine      text        not null,
	model       text        not null,
	answer_json jsonb       not null,
	created_at  timestamptz not null default now(),
	primary key (image_hash, engine, model)
)`
	_, err := r.DB.ExecContext(ctx, ddl)
	return err
}

// Find returns the cached answer for (imageHash, engine, model).
// With maxAge > 0 an older record yields sql.ErrNoRows so the caller
// recomputes.
func (r *AnswerRepo) Find(ctx context.Context, imageHash, engine, model string, maxAge time.Duration) (solve.Answer, error) {
	const q = `select answer_json, created_at
	           from answers_cache
	           where image_hash=$1 and engine=$2 and model=$3`
	var (
		js []byte
		ts time.Time
	)
	if err := r.DB.QueryRowContext(ctx, q, imageHash, engine, model).Scan(&js, &ts); err != nil {
		return solve.Answer{}, err
	}
	if maxAge > 0 && time.Since(ts) > maxAge {
		return solve.Answer{}, sql.ErrNoRows
	}
	var ans solve.Answer
	if err := json.Unmarshal(js, &ans); err != nil {
		// corrupted cache rows count as misses
		return solve.Answer{}, sql.ErrNoRows
	}
	return ans, nil
}

// Upsert stores or refreshes the answer for (imageHash, engine, model).
func (r *AnswerRepo) Upsert(ctx context.Context, imageHash, engine, model string, ans solve.Answer) error {
	js, _ := json.Marshal(ans)
	const q = `
insert into answers_cache(image_hash, engine, model, answer_json)
values ($1,$2,$3,$4)
on conflict (image_hash, engine, model)
do update set answer_json=excluded.answer_json, created_at=now()`
	_, err := r.DB.ExecContext(ctx, q, imageHash, engine, model, js)
	return err
}
