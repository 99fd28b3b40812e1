// Package composer assembles multi-category search results into a single
// design-system recommendation document.
//
// Generate runs one search per category with fixed result caps (3 for the
// single-pick categories, 5 for charts and ux guidelines), then composes the
// top picks, alternates, a derived anti-pattern list, and a pre-delivery
// checklist. The per-category searches share only the query text, so they
// run concurrently and are joined before composition.
//
//	c := composer.New(search)
//	doc, err := c.Generate(ctx, "dashboard analytics dark mode", "Acme")
//
// A category whose data source fails contributes nothing to the document;
// the document itself is still produced.
package composer
