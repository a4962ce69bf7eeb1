package feature

// Icon references for the reference feature list. They name files in the
// embedded icon bundle.
const (
	IconPerformance IconRef = "thanhhoa_performance.svg"
	IconDeveloper   IconRef = "thanhhoa_dev.svg"
	IconSecurity    IconRef = "thanhhoa_security.svg"
)

var reference = NewList(
	MustNew(
		"High Performance",
		IconPerformance,
		`Built on Bun's non-blocking I/O, ThanhHoaJS delivers ultra-fast request processing
		with built-in caching and response compression.`,
	),
	MustNew(
		"Developer Friendly",
		IconDeveloper,
		`Full TypeScript support with intuitive routing, modular middleware system,
		and comprehensive error handling for a seamless development experience.`,
	),
	MustNew(
		"Enterprise Ready",
		IconSecurity,
		`Production-ready features including CORS, Helmet security, rate limiting,
		and Swagger documentation integration out of the box.`,
	),
)

// Reference returns the homepage feature list shipped with the docs site.
func Reference() List {
	return reference
}
