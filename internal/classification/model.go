package classification

import (
	"math"
	"regexp"
	"strings"
)

// departments are the model's label set, in label order. Resumes the
// model cannot place fall back to rule-based assignment, which may
// also produce "General".
var departments = []string{"IT", "HR", "Finance", "Marketing", "Engineering", "Operations", "Sales"}

// trainingCorpus is a small seed corpus of department-typical keyword
// documents. Three to four documents per department is enough for a
// centroid model over this vocabulary.
var trainingCorpus = []struct {
	label int
	text  string
}{
	{0, "python java programming software development web database sql cloud aws docker kubernetes backend frontend"},
	{0, "javascript react node.js web development full stack mobile app programming api rest"},
	{0, "data science machine learning python sql analysis visualization pandas numpy"},
	{0, "devops aws azure cloud infrastructure docker kubernetes ci cd jenkins"},

	{1, "recruitment hiring talent acquisition HR management interviewing onboarding employee relations"},
	{1, "human resources payroll benefits compensation training development performance management"},
	{1, "recruiter sourcing screening candidates HR policies compliance diversity inclusion"},

	{2, "accounting finance budgeting financial analysis audit tax investment banking"},
	{2, "financial planning analysis fpa forecasting budgeting reporting excel"},
	{2, "accountant bookkeeping gaap financial statements audit tax preparation"},

	{3, "marketing sales digital social media SEO content strategy advertising branding"},
	{3, "digital marketing google analytics seo sem social media content creation"},
	{3, "brand management product marketing market research campaign management"},

	{4, "engineering mechanical electrical civil design construction manufacturing"},
	{4, "mechanical engineer design cad solidworks manufacturing production"},
	{4, "civil engineer construction project management structural design"},

	{5, "operations supply chain logistics management production quality control"},
	{5, "supply chain logistics inventory management procurement operations"},
	{5, "project management operations process improvement lean manufacturing"},

	{6, "sales business development client relationship negotiation deal closing"},
	{6, "account executive sales representative business development b2b sales"},
	{6, "sales manager team leadership revenue growth customer acquisition"},
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// stopwords trims common English filler so resume prose does not drown
// the department signal.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "have": {}, "has": {}, "had": {}, "was": {}, "were": {},
	"are": {}, "been": {}, "will": {}, "would": {}, "can": {}, "could": {},
	"not": {}, "but": {}, "all": {}, "any": {}, "our": {}, "their": {},
	"his": {}, "her": {}, "its": {}, "into": {}, "over": {}, "under": {},
	"about": {}, "also": {}, "more": {}, "most": {}, "other": {}, "such": {},
	"than": {}, "then": {}, "them": {}, "they": {}, "there": {}, "where": {},
	"when": {}, "which": {}, "while": {}, "who": {}, "whom": {}, "your": {},
	"you": {}, "per": {}, "via": {}, "each": {}, "during": {}, "through": {},
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// centroidModel is a nearest-centroid bag-of-words classifier. Each
// label's centroid is the mean term-frequency vector of its training
// documents; prediction is cosine similarity against each centroid.
type centroidModel struct {
	centroids []map[string]float64
}

func trainCentroidModel() *centroidModel {
	sums := make([]map[string]float64, len(departments))
	counts := make([]int, len(departments))
	for i := range sums {
		sums[i] = map[string]float64{}
	}

	for _, doc := range trainingCorpus {
		for _, tok := range tokenize(doc.text) {
			sums[doc.label][tok]++
		}
		counts[doc.label]++
	}

	for label, sum := range sums {
		if counts[label] == 0 {
			continue
		}
		for tok := range sum {
			sum[tok] /= float64(counts[label])
		}
	}

	return &centroidModel{centroids: sums}
}

// predict returns the best-matching label index. ok is false when the
// text shares no vocabulary with any centroid, in which case the
// caller should fall back to rule-based assignment.
func (m *centroidModel) predict(text string) (label int, ok bool) {
	freq := map[string]float64{}
	for _, tok := range tokenize(text) {
		freq[tok]++
	}
	if len(freq) == 0 {
		return 0, false
	}

	docNorm := 0.0
	for _, f := range freq {
		docNorm += f * f
	}
	docNorm = math.Sqrt(docNorm)

	best, bestSim := 0, 0.0
	for i, centroid := range m.centroids {
		dot, norm := 0.0, 0.0
		for tok, weight := range centroid {
			norm += weight * weight
			if f, found := freq[tok]; found {
				dot += weight * f
			}
		}
		if dot == 0 {
			continue
		}
		sim := dot / (docNorm * math.Sqrt(norm))
		if sim > bestSim {
			best, bestSim = i, sim
		}
	}

	if bestSim == 0 {
		return 0, false
	}
	return best, true
}
