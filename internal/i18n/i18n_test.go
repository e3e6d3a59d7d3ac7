package i18n

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func keysOf(m map[Key]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, string(k))
	}
	sort.Strings(out)
	return out
}

func TestCatalogs_SameKeySet(t *testing.T) {
	if diff := cmp.Diff(keysOf(en), keysOf(fa)); diff != "" {
		t.Fatalf("fa and en define different keys (-en +fa):\n%s", diff)
	}
}

func TestCatalogs_SameVerbs(t *testing.T) {
	for k, e := range en {
		if strings.Count(e, "%") != strings.Count(fa[k], "%") {
			t.Fatalf("key %s: format verbs differ between en and fa", k)
		}
	}
}

func TestTranslator(t *testing.T) {
	c := Default()

	assert.Equal(t, "Folder \"Trip\" was created with 2 item(s).", c.For(En).T(FolderCreated, "Trip", 2))
	assert.Equal(t, Fa, c.For(Fa).Lang())
	assert.Equal(t, En, c.For("de").Lang(), "unknown language falls back")
	assert.Equal(t, "no_such_key", c.For(En).T("no_such_key"))
}

func TestMatches(t *testing.T) {
	c := Default()
	assert.True(t, c.Matches(BtnDone, "Upload completed."))
	assert.True(t, c.Matches(BtnDone, "upload completed"))
	assert.True(t, c.Matches(BtnDone, "آپلود تمام شد."))
	assert.True(t, c.Matches(BtnCancel, "❌ Cancel"))
	assert.True(t, c.Matches(BtnCancel, "cancel"))
	assert.False(t, c.Matches(BtnSkip, "لغو"))
	assert.True(t, c.Matches(BtnCancel, "لغو"))
	assert.False(t, c.Matches(BtnCancel, "Trip2024"))
	assert.False(t, c.Matches(BtnCancel, ""))
}

func TestParse(t *testing.T) {
	l, ok := Parse(" EN ")
	assert.True(t, ok)
	assert.Equal(t, En, l)
	_, ok = Parse("de")
	assert.False(t, ok)
}
