package help

// ColdstartYAML is printed by the quickstart command.
const ColdstartYAML = `# post-theme-analyzer Quick Start

input:
  format: "CSV with a header row"
  required_column: "content (override with --content-column)"
  encoding: "UTF-8, optional BOM"

label_modes:
  literal: "Theme repeats once per matching keyword (default)"
  dedupe: "Each theme listed at most once"

commands:
  analyze_selected: |
    post-theme-analyzer analyze --input posts.csv --themes "AMAZONIA,Diplomacia"

  analyze_all: |
    post-theme-analyzer analyze --input posts.csv --all

  custom_theme: |
    post-theme-analyzer analyze --input posts.csv --themes "Soberania" \
      --custom-theme "Clima" --custom-keywords "aquecimento, COP30, desmatamento"

  keywords_file: |
    post-theme-analyzer themes > keywords.yaml
    # edit keywords.yaml, then
    post-theme-analyzer analyze --input posts.csv --keywords-file keywords.yaml --all

  classify_one: |
    post-theme-analyzer classify --all --text "Macron visita a Amazônia"

  list_themes: |
    post-theme-analyzer themes

  enrich: |
    post-theme-analyzer analyze --input posts.csv --all --strip-html --detect-language --normalize

key_files:
  - "theme-results/sessions/{YYYY-MM-DDTHH-MM}-{hash}/Twitter_posts_{theme}.csv"
  - "theme-results/sessions/{YYYY-MM-DDTHH-MM}-{hash}/Twitter_posts_multi_themes.csv"
  - "theme-results/sessions/{YYYY-MM-DDTHH-MM}-{hash}/keyword_frequency.png"
  - "theme-results/sessions/{YYYY-MM-DDTHH-MM}-{hash}/summary.yaml"

output_columns:
  Themes: "Matched theme names joined with ', ' or None"
  Keyword Count: "JSON object keyword -> matches, in first-match order"
  Language: "ISO-639-1 code, only with --detect-language"

matching_rules:
  - "Case-insensitive substring match, no tokenization"
  - "'Amazônia' also matches 'Amazônias' and 'amazônia'"
  - "A keyword shared by two themes counts twice"
  - "Theme exports use substring match on the Themes column"
  - "Multi-theme export = Themes contains ', '"

env:
  THEME_ANALYZER_OUTPUT_DIR: "Default for --output-dir"
  THEME_ANALYZER_LABEL_MODE: "Default for --label-mode"
`
