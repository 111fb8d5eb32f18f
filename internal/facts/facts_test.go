package facts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarmap/scholarmap/pkg/authors"
	"github.com/scholarmap/scholarmap/pkg/errors"
)

const sampleFacts = `name: JANE DOE
display_name: Janie
native_names:
- 简·多伊
status: active
emails:
- jane@cern.ch
arxiv_categories:
- hep-ex
urls:
- value: http://jane.test
  description: homepage
blogs:
- http://jane.blog
linkedin: https://linkedin.com/in/janedoe
twitter: https://twitter.com/janedoe
positions:
- institution: CERN
  start_date: "2020"
  rank: POSTDOC
  curated: true
  current: true
projects:
- name: ATLAS
  start_date: June 2019
advisors:
- name: John Smith
  ids: X1
  degree_type: phd
comments:
- value: needs review
  source: harvester
`

func writeFacts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc, err := Load(writeFacts(t, sampleFacts))
		require.NoError(t, err)

		assert.Equal(t, "JANE DOE", doc.Name)
		assert.Equal(t, authors.StringList{"X1"}, doc.Advisors[0].IDs)
		require.Len(t, doc.Positions, 1)
		assert.True(t, doc.Positions[0].Curated)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFacts(t, "positions: {not: [a, valid"))
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}

func TestDocument_Apply(t *testing.T) {
	doc, err := Load(writeFacts(t, sampleFacts))
	require.NoError(t, err)

	builder := authors.NewBuilder()
	doc.Apply(builder)
	author := builder.Author()

	require.NotNil(t, author.Name)
	require.NotNil(t, author.Name.Value)
	assert.Equal(t, "Doe, Jane", *author.Name.Value)
	require.NotNil(t, author.Name.PreferredName)
	assert.Equal(t, "Janie", *author.Name.PreferredName)
	assert.Equal(t, []string{"简·多伊"}, author.Name.NativeNames)

	assert.Equal(t, []authors.Status{authors.StatusActive}, author.Status)
	assert.Equal(t, []string{"jane@cern.ch"}, author.EmailAddresses)
	assert.Equal(t, []string{"hep-ex"}, author.ArxivCategories)

	require.Len(t, author.URLs, 2)
	assert.Equal(t, "http://jane.test", author.URLs[0].Value)
	require.NotNil(t, author.URLs[1].Description)
	assert.Equal(t, "blog", *author.URLs[1].Description)

	require.Len(t, author.IDs, 2)
	assert.Equal(t, authors.IDSchemaLinkedIn, author.IDs[0].Schema)
	assert.Equal(t, authors.IDSchemaTwitter, author.IDs[1].Schema)

	require.Len(t, author.Positions, 1)
	position := author.Positions[0]
	assert.Equal(t, "CERN", position.Institution)
	require.NotNil(t, position.StartDate)
	assert.Equal(t, "2020", *position.StartDate)
	require.NotNil(t, position.Rank)
	assert.Equal(t, authors.RankPostdoc, *position.Rank)
	assert.True(t, position.CuratedRelation)
	assert.True(t, position.Current)

	require.Len(t, author.ProjectMembership, 1)
	membership := author.ProjectMembership[0]
	assert.Equal(t, "ATLAS", membership.Project)
	require.NotNil(t, membership.StartDate)
	assert.Equal(t, "2019-06", *membership.StartDate)

	require.Len(t, author.Advisors, 1)
	advisor := author.Advisors[0]
	assert.Equal(t, "Smith, John", advisor.Name)
	assert.Equal(t, authors.StringList{"X1"}, advisor.IDs)
	require.NotNil(t, advisor.DegreeType)
	assert.Equal(t, authors.DegreePhD, *advisor.DegreeType)

	require.Len(t, author.PrivateNotes, 1)
	assert.Equal(t, "needs review", author.PrivateNotes[0].Value)
}

func TestDocument_ApplyEmpty(t *testing.T) {
	var doc Document
	builder := authors.NewBuilder()
	doc.Apply(builder)

	author := builder.Author()
	assert.Nil(t, author.Name)
	assert.Nil(t, author.EmailAddresses)
	assert.Nil(t, author.IDs)
	assert.Nil(t, author.Positions)
	assert.Nil(t, author.ProjectMembership)
	assert.Nil(t, author.Advisors)
	assert.Nil(t, author.PrivateNotes)
}
