package kamar

// StopWordFilter reports whether a token carries too little information to
// be ranked.
type StopWordFilter interface {
	IsStopWord(token string) bool
}

// StopWordSet is a StopWordFilter matching tokens exactly. Matching is
// case-sensitive and does no stemming.
type StopWordSet map[string]struct{}

// NewStopWordSet creates a set containing words.
func NewStopWordSet(words ...string) StopWordSet {
	s := make(StopWordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// IsStopWord reports whether token is in the set.
func (s StopWordSet) IsStopWord(token string) bool {
	_, ok := s[token]
	return ok
}

// defaultStopWordSet is built once at start-up and never modified.
var defaultStopWordSet = NewStopWordSet(defaultStopWords...)

// DefaultStopWords returns the built-in Arabic and English stop-word filter.
func DefaultStopWords() StopWordFilter {
	return defaultStopWordSet
}

// defaultStopWords lists common Arabic and English function words.
var defaultStopWords = []string{
	// Arabic
	"التي", "الذي", "الذين", "اللذان", "اللتان", "اللواتي", "التى", "والتي", "والذي",
	"هذا", "هذه", "هذان", "هاتان", "هؤلاء", "ذلك", "تلك", "أولئك", "هناك", "هنالك", "هنا",
	"تكون", "يكون", "كان", "كانت", "كانوا", "يكونون", "أصبح", "أصبحت", "ليس", "ليست",
	"يمكن", "يمكنك", "تستطيع", "يجب", "أو", "أم", "في", "فى", "من", "إلى", "الى", "على", "علي",
	"عن", "مع", "كما", "حيث", "لكن", "لكنه", "عند", "عندما", "بين", "كل", "بعد", "قبل",
	"حول", "خلال", "أكثر", "اكثر", "أيضا", "أيضاً", "ايضا", "فقط", "لقد", "غير", "منذ",
	"ضمن", "عبر", "لدى", "حتى", "إذا", "اذا", "أنه", "أنها", "إنه", "إنها", "لها", "لهم",
	"عليه", "عليها", "فيها", "فيه", "منها", "منه", "بها", "به", "وهو", "وهي", "ولكن",
	"إلا", "الا", "بعض", "جميع", "أي", "أية", "كيف", "ماذا", "لماذا", "متى", "أين",
	"نحو", "مثل", "لدينا", "لديك", "لديه", "عليك", "إليك", "اليك", "هل", "قد", "لم", "لن",
	// English
	"the", "and", "for", "that", "this", "with", "from", "your", "have", "what",
	"about", "will", "they", "their", "there", "when", "which", "more", "also",
	"into", "than", "then", "them", "were", "been", "some", "such", "only",
	"other", "these", "those", "here", "just", "over", "very", "does", "each",
	"most", "while", "where", "would", "could", "should", "because", "being",
	"after", "before", "The", "This", "That", "What", "With", "Your", "How", "how",
}

// defaultBuzzwords lists cliché marketing phrases stripped from descriptions.
var defaultBuzzwords = []string{
	"تعرف على", "اكتشف", "تعلّم", "تعلم", "كل ما تحتاج", "دليل شامل",
	"افضل النصائح", "أفضل النصائح", "موثوق", "لا تفوّت", "لا تفوت",
	"خدعة", "مذهل", "رائع",
	"everything you need", "discover", "amazing", "top 10", "secret", "trick",
}
