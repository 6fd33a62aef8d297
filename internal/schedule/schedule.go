package schedule

// Entry is one planned task in the static preparation schedule.
type Entry struct {
	Date        string
	Week        int
	Phase       string
	Category    string
	Description string
	Priority    int
}

const phaseLaunch = "Launch & Foundation"

// entries is the hand-authored plan for phase 1. Further weeks are
// appended here as the plan gets detailed out.
var entries = []Entry{
	// Week 1: Sep 22 - Sep 28
	{Date: "2025-09-22", Week: 1, Phase: phaseLaunch, Category: "DSA", Description: "2 Easy problems (arrays, strings)", Priority: 2},
	{Date: "2025-09-22", Week: 1, Phase: phaseLaunch, Category: "PROJECT", Description: "Create portfolio-2026 repo; scaffold Next.js/React app", Priority: 3},
	{Date: "2025-09-22", Week: 1, Phase: phaseLaunch, Category: "LEARN", Description: "Oracle portal & voucher claim", Priority: 1},
	{Date: "2025-09-22", Week: 1, Phase: phaseLaunch, Category: "OPS", Description: "Install Docker; docker run hello-world", Priority: 2},
	{Date: "2025-09-22", Week: 1, Phase: phaseLaunch, Category: "APPLY", Description: "5 apps; 10 LinkedIn messages", Priority: 3},

	{Date: "2025-09-23", Week: 1, Phase: phaseLaunch, Category: "DSA", Description: "2 Easy problems (hashmap)", Priority: 2},
	{Date: "2025-09-23", Week: 1, Phase: phaseLaunch, Category: "PROJECT", Description: "Build homepage + nav; push commit", Priority: 3},
	{Date: "2025-09-23", Week: 1, Phase: phaseLaunch, Category: "LEARN", Description: "React hooks (useState, useEffect)", Priority: 2},
	{Date: "2025-09-23", Week: 1, Phase: phaseLaunch, Category: "OPS", Description: "Dockerfile: backend skeleton", Priority: 2},
	{Date: "2025-09-23", Week: 1, Phase: phaseLaunch, Category: "APPLY", Description: "5 apps/follow-ups", Priority: 3},

	{Date: "2025-09-24", Week: 1, Phase: phaseLaunch, Category: "DSA", Description: "1 Medium (two-pointer), 1 Easy (string)", Priority: 2},
	{Date: "2025-09-24", Week: 1, Phase: phaseLaunch, Category: "PROJECT", Description: "Implement simple TODO UI", Priority: 3},
	{Date: "2025-09-24", Week: 1, Phase: phaseLaunch, Category: "LEARN", Description: "JavaScript ES6 features", Priority: 2},
	{Date: "2025-09-24", Week: 1, Phase: phaseLaunch, Category: "OPS", Description: "Setup GitHub Actions (CI)", Priority: 2},
	{Date: "2025-09-24", Week: 1, Phase: phaseLaunch, Category: "APPLY", Description: "5 LinkedIn / 2 apps", Priority: 3},

	// Week 2: Sep 29 - Oct 5
	{Date: "2025-09-29", Week: 2, Phase: phaseLaunch, Category: "DSA", Description: "2 Medium problems", Priority: 2},
	{Date: "2025-09-29", Week: 2, Phase: phaseLaunch, Category: "PROJECT", Description: "Implement user signup endpoint", Priority: 3},
	{Date: "2025-09-29", Week: 2, Phase: phaseLaunch, Category: "LEARN", Description: "OCI Foundations module 1", Priority: 1},
	{Date: "2025-09-29", Week: 2, Phase: phaseLaunch, Category: "OPS", Description: "Test DB migrations; seed data", Priority: 2},
	{Date: "2025-09-29", Week: 2, Phase: phaseLaunch, Category: "APPLY", Description: "5 applications", Priority: 3},

	{Date: "2025-09-30", Week: 2, Phase: phaseLaunch, Category: "DSA", Description: "2 Easy + 1 Medium", Priority: 2},
	{Date: "2025-09-30", Week: 2, Phase: phaseLaunch, Category: "PROJECT", Description: "Build login flow (JWT)", Priority: 3},
	{Date: "2025-09-30", Week: 2, Phase: phaseLaunch, Category: "LEARN", Description: "SQL indexing", Priority: 2},
	{Date: "2025-09-30", Week: 2, Phase: phaseLaunch, Category: "OPS", Description: "Configure GitHub Actions secret", Priority: 2},
	{Date: "2025-09-30", Week: 2, Phase: phaseLaunch, Category: "APPLY", Description: "5 apps / 5 LinkedIn messages", Priority: 3},
}

// Entries returns a copy of the seed schedule.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
