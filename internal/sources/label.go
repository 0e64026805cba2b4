// Package sources defines the source-label vocabulary for harvested text
// segments and the heuristics that assign labels to scraped pages.
package sources

// Label identifies what kind of web source a text segment came from.
// The vocabulary is closed: anything unrecognized maps to Unknown so new
// discovery source types degrade to conservative defaults instead of
// silently inventing labels.
type Label string

const (
	Homepage             Label = "homepage"
	GitHub               Label = "github"
	EngineeringBlog      Label = "engineering_blog"
	JobPosting           Label = "job_posting"
	JobPostingVerified   Label = "job_posting_verified"
	ATSLink              Label = "ats_link"
	CareersFallback      Label = "careers_fallback"
	SubdomainAI          Label = "subdomain_ai"
	SubdomainResearch    Label = "subdomain_research"
	SubdomainEngineering Label = "subdomain_engineering"
	SubdomainDev         Label = "subdomain_dev"
	SubdomainCloud       Label = "subdomain_cloud"
	NewsArticle          Label = "news_article"
	PressRelease         Label = "press_release"
	InvestorRelations    Label = "investor_relations"
	Newsroom             Label = "newsroom"
	GoogleSnippets       Label = "google_snippets"
	ProductRole          Label = "product_role"
	MarketingRole        Label = "marketing_role"
	LegalRole            Label = "legal_role"
	OperationsRole       Label = "operations_role"
	DesignRole           Label = "design_role"
	FinanceRole          Label = "finance_role"
	HRRole               Label = "hr_role"
	SalesRole            Label = "sales_role"
	CareersAIKeywordHit  Label = "careers_ai_keyword_hit"
	ConferenceSpeaking   Label = "conference_speaking"
	ManualRescore        Label = "manual_rescore"
	Unknown              Label = "unknown"
)

// All lists every recognized label, Unknown excluded.
var All = []Label{
	Homepage, GitHub, EngineeringBlog, JobPosting, JobPostingVerified,
	ATSLink, CareersFallback, SubdomainAI, SubdomainResearch,
	SubdomainEngineering, SubdomainDev, SubdomainCloud, NewsArticle,
	PressRelease, InvestorRelations, Newsroom, GoogleSnippets, ProductRole,
	MarketingRole, LegalRole, OperationsRole, DesignRole, FinanceRole,
	HRRole, SalesRole, CareersAIKeywordHit, ConferenceSpeaking, ManualRescore,
}

var valid = func() map[Label]bool {
	m := make(map[Label]bool, len(All))
	for _, l := range All {
		m[l] = true
	}
	return m
}()

// Parse maps a raw string onto the vocabulary. Unrecognized strings
// return Unknown rather than an error; unknown sources are expected when
// upstream discovery grows new source types.
func Parse(s string) Label {
	l := Label(s)
	if valid[l] {
		return l
	}
	return Unknown
}

// IsValid reports whether l is part of the closed vocabulary.
func (l Label) IsValid() bool {
	return valid[l] || l == Unknown
}

func (l Label) String() string { return string(l) }

// engineeringSources route their keyword points into the engineering
// (ai_in_it) bucket. Everything else, Unknown included, is non-engineering.
var engineeringSources = map[Label]bool{
	GitHub:               true,
	EngineeringBlog:      true,
	JobPosting:           true,
	JobPostingVerified:   true,
	ATSLink:              true,
	CareersFallback:      true,
	SubdomainEngineering: true,
	SubdomainDev:         true,
}

// IsEngineering reports whether keyword points from this label count as
// engineering-sourced evidence.
func (l Label) IsEngineering() bool { return engineeringSources[l] }

// corroborating labels are the engineering sources whose presence in the
// keyword or tool attribution clears the marketing-only flag. Narrower than
// IsEngineering: engineering subdomains are excluded because their content
// is frequently marketing-written.
var corroborating = map[Label]bool{
	GitHub:             true,
	EngineeringBlog:    true,
	JobPosting:         true,
	JobPostingVerified: true,
	ATSLink:            true,
	CareersFallback:    true,
}

// Corroborates reports whether evidence from this label substantiates
// homepage AI claims.
func (l Label) Corroborates() bool { return corroborating[l] }

var newsSources = map[Label]bool{
	NewsArticle:       true,
	PressRelease:      true,
	InvestorRelations: true,
	Newsroom:          true,
}

// IsNews reports whether this label is a news/press/IR source whose
// keyword evidence is subject to recency decay.
func (l Label) IsNews() bool { return newsSources[l] }

var nonEngRoles = map[Label]bool{
	ProductRole:    true,
	MarketingRole:  true,
	LegalRole:      true,
	OperationsRole: true,
	DesignRole:     true,
	FinanceRole:    true,
	HRRole:         true,
	SalesRole:      true,
}

// IsNonEngRole reports whether this label denotes a non-engineering
// department job posting.
func (l Label) IsNonEngRole() bool { return nonEngRoles[l] }

// AIFocused lists the labels inspected for platform-provider language,
// strongest signal first. Order matters: the first qualifying segment wins.
var AIFocused = []Label{SubdomainAI, SubdomainDev, SubdomainCloud, EngineeringBlog}

// DefaultToolWeight applies to labels without an entry in the tool
// weighting table.
const DefaultToolWeight = 0.5

// toolWeights ranks how much a tool mention from each source is worth.
// Engineering-controlled sources weigh heaviest; marketing copy least.
var toolWeights = map[Label]float64{
	GitHub:               2.0,
	EngineeringBlog:      1.5,
	JobPosting:           2.0,
	Homepage:             0.5,
	ConferenceSpeaking:   1.0,
	JobPostingVerified:   2.0,
	CareersFallback:      1.5,
	ATSLink:              2.0,
	SubdomainAI:          2.0,
	SubdomainResearch:    2.0,
	SubdomainEngineering: 1.5,
	SubdomainDev:         1.5,
	SubdomainCloud:       1.5,
	NewsArticle:          0.75,
	PressRelease:         0.75,
	InvestorRelations:    1.0,
	Newsroom:             0.75,
	GoogleSnippets:       0.75,
	ProductRole:          1.5,
	MarketingRole:        1.0,
	LegalRole:            1.0,
	OperationsRole:       1.0,
	DesignRole:           1.0,
	FinanceRole:          1.0,
	HRRole:               1.0,
	SalesRole:            1.0,
	CareersAIKeywordHit:  1.5,
}

// ToolWeight returns the source-trust weight used when summing the
// weighted tool count.
func (l Label) ToolWeight() float64 {
	if w, ok := toolWeights[l]; ok {
		return w
	}
	return DefaultToolWeight
}
