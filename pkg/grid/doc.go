// Package grid computes print-ready modular grid layouts in the tradition of
// Josef Müller-Brockmann's "Grid Systems in Graphic Design" (1981).
//
// Given a standardized page format, an orientation, column/row counts, a
// margin method, and an optional baseline override, [Build] resolves page
// geometry, baseline-snapped margins, module sizing, and a proportionally
// scaled typography system into one immutable [Spec].
//
// # Methodology
//
// The engine follows a margin-and-baseline methodology rather than ad-hoc
// placement:
//
//   - All vertical rhythm derives from a single baseline unit (12 pt on the
//     A4 reference format, scaled for other formats).
//   - Gutters always equal exactly one baseline unit.
//   - The top margin snaps to a baseline multiple; the bottom margin is the
//     remainder after placing baseline-aligned module rows.
//   - Every module row spans an integer number of baseline units (minimum 2).
//   - Typography sizes scale with the format, leading scales with the
//     baseline unit, so custom baselines change rhythm without distorting
//     glyph size.
//
// All computation is pure: Build has no side effects, identical inputs yield
// identical specs, and the static tables (format catalog, reference
// typography) are process-wide read-only values.
package grid
