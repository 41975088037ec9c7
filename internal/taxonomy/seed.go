package taxonomy

func init() {
	t = buildTree(seedNodes)
}

// seedNodes defines the default study-note category hierarchy: three levels
// (large/medium/small) with the keyword set used for overlap matching.
// Keywords are stored lowercase; Classify normalizes input the same way.
var seedNodes = []Node{
	// Programming / Java
	{
		Large: "programming", Medium: "java", Small: "collections",
		Keywords:   []string{"list", "map", "set"},
		ExampleTag: "#Java",
	},
	{
		Large: "programming", Medium: "java", Small: "generics",
		Keywords:   []string{"generic", "type parameter", "wildcard", "bounded"},
		ExampleTag: "#Java",
	},
	{
		Large: "programming", Medium: "java", Small: "concurrency",
		Keywords:   []string{"thread", "synchronized", "lock", "executor", "volatile"},
		ExampleTag: "#Java",
	},
	{
		Large: "programming", Medium: "java", Small: "stream-api",
		Keywords:   []string{"stream", "lambda", "filter", "map", "collect"},
		ExampleTag: "#Java",
	},

	// Programming / Spring
	{
		Large: "programming", Medium: "spring", Small: "dependency-injection",
		Keywords:   []string{"bean", "autowired", "container", "injection", "component"},
		ExampleTag: "#Spring",
	},
	{
		Large: "programming", Medium: "spring", Small: "mvc",
		Keywords:   []string{"controller", "request", "response", "dispatcher", "view"},
		ExampleTag: "#Spring",
	},
	{
		Large: "programming", Medium: "spring", Small: "jpa",
		Keywords:   []string{"entity", "repository", "transaction", "lazy loading", "persistence"},
		ExampleTag: "#JPA",
	},

	// Programming / Web
	{
		Large: "programming", Medium: "web", Small: "http",
		Keywords:   []string{"http", "header", "status code", "cookie", "session"},
		ExampleTag: "#Web",
	},
	{
		Large: "programming", Medium: "web", Small: "rest-api",
		Keywords:   []string{"rest", "endpoint", "resource", "json", "method"},
		ExampleTag: "#API",
	},

	// Database
	{
		Large: "database", Medium: "sql", Small: "joins",
		Keywords:   []string{"join", "inner", "outer", "foreign key"},
		ExampleTag: "#SQL",
	},
	{
		Large: "database", Medium: "sql", Small: "indexing",
		Keywords:   []string{"index", "b-tree", "query plan", "cardinality"},
		ExampleTag: "#SQL",
	},
	{
		Large: "database", Medium: "sql", Small: "transactions",
		Keywords:   []string{"transaction", "commit", "rollback", "isolation", "acid"},
		ExampleTag: "#SQL",
	},
	{
		Large: "database", Medium: "nosql", Small: "redis",
		Keywords:   []string{"redis", "cache", "ttl", "key-value"},
		ExampleTag: "#Redis",
	},

	// Computer science / Algorithms
	{
		Large: "computer-science", Medium: "algorithms", Small: "sorting",
		Keywords:   []string{"sort", "quicksort", "mergesort", "heap", "complexity"},
		ExampleTag: "#Algorithm",
	},
	{
		Large: "computer-science", Medium: "algorithms", Small: "graphs",
		Keywords:   []string{"graph", "bfs", "dfs", "shortest path", "cycle"},
		ExampleTag: "#Algorithm",
	},
	{
		Large: "computer-science", Medium: "algorithms", Small: "dynamic-programming",
		Keywords:   []string{"dp", "memoization", "subproblem", "recurrence"},
		ExampleTag: "#Algorithm",
	},
	{
		Large: "computer-science", Medium: "data-structures", Small: "trees",
		Keywords:   []string{"tree", "binary", "balanced", "traversal", "node"},
		ExampleTag: "#DataStructure",
	},
	{
		Large: "computer-science", Medium: "data-structures", Small: "hash-tables",
		Keywords:   []string{"hash", "bucket", "collision", "load factor"},
		ExampleTag: "#DataStructure",
	},

	// Computer science / Operating systems
	{
		Large: "computer-science", Medium: "operating-systems", Small: "processes",
		Keywords:   []string{"process", "scheduling", "context switch", "fork"},
		ExampleTag: "#OS",
	},
	{
		Large: "computer-science", Medium: "operating-systems", Small: "memory",
		Keywords:   []string{"memory", "paging", "virtual", "segmentation", "heap"},
		ExampleTag: "#OS",
	},

	// Computer science / Networking
	{
		Large: "computer-science", Medium: "networking", Small: "tcp-ip",
		Keywords:   []string{"tcp", "udp", "ip", "handshake", "packet"},
		ExampleTag: "#Network",
	},
	{
		Large: "computer-science", Medium: "networking", Small: "dns",
		Keywords:   []string{"dns", "domain", "resolver", "record"},
		ExampleTag: "#Network",
	},
}
