package counsel

// Section identifies one of the three recommendation categories. The string
// value doubles as the JSON key on Recommendation.
type Section string

const (
	SectionCareerPaths Section = "career_paths"
	SectionSkills      Section = "skills"
	SectionResources   Section = "resources"
)

// sectionOrder fixes both the header-match precedence and the order sections
// are assembled in.
var sectionOrder = [...]Section{SectionCareerPaths, SectionSkills, SectionResources}

// sectionHeaders lists the recognized header prefixes per section, compared
// case-insensitively against the start of a line. The long form is listed
// first so "Skills to Learn:" never falls through to the bare "skills:" form.
var sectionHeaders = map[Section][]string{
	SectionCareerPaths: {"career paths:", "career path:"},
	SectionSkills:      {"skills to learn:", "skills:"},
	SectionResources:   {"learning resources:", "resources:"},
}

var sectionLabels = map[Section]string{
	SectionCareerPaths: "career paths",
	SectionSkills:      "skills",
	SectionResources:   "resources",
}

// emptyPlaceholder is the single entry used when a section yielded no items
// but at least one other section did.
func emptyPlaceholder(section Section) string {
	return "No " + sectionLabels[section] + " provided"
}

// errorEntry is the per-section entry of the fixed error record.
func errorEntry(section Section) string {
	return "Error parsing " + sectionLabels[section]
}

// errorRecord is returned whenever a provider's text could not be parsed at
// all. It is shaped like a normal Recommendation so clients never need a
// separate failure path.
func errorRecord() Recommendation {
	var rec Recommendation
	for _, section := range sectionOrder {
		rec.setSection(section, []string{errorEntry(section)})
	}
	return rec
}
