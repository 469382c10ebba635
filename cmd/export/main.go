package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"hireboard/internal/domain/user"
	"hireboard/internal/infrastructure/export"
	"hireboard/internal/listview"
	"hireboard/internal/seeder"
	"hireboard/internal/usecase"
)

// export writes a generated candidate set to an xlsx file, optionally
// narrowed the same way the candidate list is.
func main() {
	count := flag.Int("count", 50, "number of candidates to generate")
	seed := flag.Int64("seed", 1, "generator seed")
	query := flag.String("q", "", "search text")
	status := flag.String("status", "", "comma separated statuses")
	sortField := flag.String("sort", "addedAt", "sort field")
	dir := flag.String("dir", "desc", "sort direction")
	out := flag.String("out", "candidates.xlsx", "output file")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gen := seeder.CandidateSeeder{
		Count:      *count,
		Seed:       *seed,
		Recruiters: user.DefaultDirectory().Recruiters(),
	}
	items, err := gen.Generate(ctx)
	if err != nil {
		log.Fatalf("generate failed: %v", err)
	}

	direction, err := listview.ParseDirection(*dir)
	if err != nil {
		log.Fatalf("invalid -dir: %v", err)
	}
	q := listview.Query{
		Text: strings.TrimSpace(*query),
		Sort: listview.SortSpec{Field: *sortField, Direction: direction},
	}
	if s := strings.TrimSpace(*status); s != "" {
		q.Facets = map[string][]string{"status": strings.Split(s, ",")}
	}

	res, err := usecase.CandidateDescriptor.Apply(items, q)
	if err != nil {
		log.Fatalf("filter failed: %v", err)
	}

	b, err := export.Candidates(res.Items)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		log.Fatalf("write %s failed: %v", *out, err)
	}
	log.Printf("exported %d of %d candidates to %s", res.Total, len(items), *out)
}
