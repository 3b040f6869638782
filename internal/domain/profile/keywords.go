package profile

// skillKeywords are the skill phrases detected in pasted profiles,
// matched as case-insensitive substrings.
var skillKeywords = []string{
	"AI", "artificial intelligence", "machine learning", "deep learning",
	"blockchain", "crypto", "DeFi", "web3",
	"climate", "sustainability", "ESG", "carbon", "renewable",
	"finance", "investment", "banking", "fintech",
	"healthcare", "biotech", "pharma", "health",
	"policy", "governance", "regulation", "compliance",
	"technology", "software", "engineering", "data",
	"leadership", "strategy", "consulting", "management",
	"energy", "oil", "gas", "solar", "wind",
	"cybersecurity", "security", "privacy", "quantum",
	"economics", "trade", "supply chain", "logistics",
}

// roleInterests maps role words to the interests they imply.
var roleInterests = map[string][]string{
	"ceo":        {"leadership", "strategy", "governance", "stakeholder capitalism"},
	"cto":        {"technology", "innovation", "AI", "digital transformation"},
	"cfo":        {"finance", "investment", "risk management", "capital markets"},
	"scientist":  {"research", "innovation", "data", "methodology"},
	"engineer":   {"technology", "systems", "infrastructure", "innovation"},
	"policy":     {"governance", "regulation", "international cooperation", "policy"},
	"investor":   {"finance", "growth", "markets", "returns", "ESG"},
	"professor":  {"research", "education", "academic", "thought leadership"},
	"doctor":     {"healthcare", "medical", "patient outcomes", "health systems"},
	"founder":    {"entrepreneurship", "innovation", "startups", "disruption"},
	"director":   {"strategy", "leadership", "governance", "operations"},
	"analyst":    {"data", "research", "insights", "trends"},
	"consultant": {"strategy", "advisory", "transformation", "solutions"},
}

// urlHint broadens the synthesized LinkedIn profile when the URL slug
// contains any of its words.
type urlHint struct {
	slugWords []string
	about     string
	skills    []string
	interests []string
}

var urlHints = []urlHint{
	{
		slugWords: []string{"climate", "green", "sustain", "eco"},
		about:     "Deep focus on climate tech and environmental sustainability.",
		skills:    []string{"Climate Finance", "ESG", "Carbon Markets"},
		interests: []string{"Climate Action", "Renewable Energy"},
	},
	{
		slugWords: []string{"tech", "ai", "data", "digital"},
		about:     "Pioneer in AI and digital transformation initiatives.",
		skills:    []string{"Machine Learning", "Data Science", "Digital Strategy"},
		interests: []string{"AI Governance", "Digital Innovation"},
	},
	{
		slugWords: []string{"health", "med", "bio", "pharma"},
		about:     "Committed to advancing global health and healthcare innovation.",
		skills:    []string{"Healthcare Innovation", "Biotech", "Health Policy"},
		interests: []string{"Global Health", "Medical AI"},
	},
	{
		slugWords: []string{"finance", "invest", "capital", "bank"},
		about:     "Expert in global finance and investment strategies.",
		skills:    []string{"Investment", "Capital Markets", "Financial Strategy"},
		interests: []string{"Sustainable Finance", "DeFi"},
	},
}
