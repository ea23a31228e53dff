// Package bedca provides a client for the BEDCA Spanish food-composition
// database (https://www.bedca.net), which exposes its data through an
// XML-over-HTTP query protocol.
//
// # Overview
//
// The package is organized in three layers:
//
//   - [QueryBuilder]: constructs the foodquery XML request documents the
//     upstream service expects (selection, conditions, sort order).
//   - Parsing: [ParsePreviewList] and [ParseFood] map the loosely-typed XML
//     responses into typed values.
//   - [Client]: composes the two around a persistent HTTP session and exposes
//     the three supported operations.
//
// # Usage
//
//	client := bedca.NewClient()
//
//	// Lightweight previews of every food in the database.
//	previews, err := client.ListAllFoods(ctx)
//
//	// Substring search on the Spanish or English name.
//	matches, err := client.SearchFoodsByName(ctx, "manzana", bedca.LanguageES)
//
//	// Full nutrient profile for one food.
//	food, err := client.GetFoodByID(ctx, 2346)
//
// # Data model
//
// [Food.Nutrients] is a total record: every known nutrient field is always
// present. Nutrients the upstream source does not report are filled with a
// zero [FoodValue] whose Component is unset, so consumers never need nil
// checks. The flip side is that a true zero measurement and an unreported
// nutrient look the same unless Component is inspected.
//
// Values reported by the source as present but below the quantification
// threshold carry the trace flag instead of a number; see [FoodValue].
//
// # Errors
//
// Operations return [ErrNotFound] when a detail query matches no food,
// [ErrNetwork] for transport failures and non-2xx responses, and
// [ErrMalformedResponse] when a response body cannot be parsed. All are
// usable with errors.Is. No retries are performed; callers needing timeouts
// should configure the HTTP client via [WithHTTPClient].
package bedca
