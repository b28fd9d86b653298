package db

const schema = `
PRAGMA temp_store = MEMORY;

-- Posts table: one row per input CSV row, annotated by the classifier
CREATE TABLE IF NOT EXISTS posts (
    row_index INTEGER PRIMARY KEY,
    content TEXT NOT NULL,

    -- Raw CSV fields in header order, as a JSON array
    fields TEXT NOT NULL,

    -- Comma-joined theme label or 'None'
    themes TEXT NOT NULL,

    -- Keyword counts as JSON object: {"keyword1": count1, ...}
    keyword_count TEXT NOT NULL DEFAULT '{}',

    language TEXT
);

CREATE INDEX IF NOT EXISTS idx_posts_themes ON posts(themes);
`
