package authors

import (
	"github.com/goccy/go-yaml"
)

// FormatYAML returns a well-formatted YAML representation of the record
// with section comments for human-facing output. Only sections present on
// the record are annotated; the serialized field names are unchanged.
func (a *Author) FormatYAML() string {
	commentMap := yaml.CommentMap{}

	if a.Name != nil {
		commentMap["$.name"] = []*yaml.Comment{
			yaml.HeadComment(" Personal name"),
		}
	}

	if a.Positions != nil {
		commentMap["$.positions"] = []*yaml.Comment{
			yaml.HeadComment(" Institutional history"),
		}
	}

	if a.ProjectMembership != nil {
		commentMap["$.project_membership"] = []*yaml.Comment{
			yaml.HeadComment(" Projects and experiments"),
		}
	}

	if a.Advisors != nil {
		commentMap["$.advisors"] = []*yaml.Comment{
			yaml.HeadComment(" Advisor relations"),
		}
	}

	if a.PrivateNotes != nil {
		commentMap["$._private_notes"] = []*yaml.Comment{
			yaml.HeadComment(" Internal curation notes"),
		}
	}

	yamlData, err := yaml.MarshalWithOptions(a,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseLiteralStyleIfMultiline(true),
		yaml.WithComment(commentMap),
	)
	if err != nil {
		// Fallback to basic marshal if comment marshaling fails
		yamlData, _ = yaml.Marshal(a)
	}

	return string(yamlData)
}
