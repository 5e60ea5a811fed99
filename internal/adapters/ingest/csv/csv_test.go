package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestParse_CyrillicHeaders(t *testing.T) {
	res, err := Parse("Имя,Телефон,Источник\nИван,+79001234567,Сайт\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 1)

	l := res.Leads[0]
	assert.Equal(t, "Иван", l.Name)
	assert.Equal(t, "+79001234567", l.Phone)
	assert.Equal(t, "Сайт", l.Source)
	assert.Empty(t, l.CreatedAt)
	assert.Nil(t, l.Raw)
	assert.Equal(t, []string{"name", "phone", "source"}, res.Columns)
}

func TestParse_DropsRowsWithoutIdentity(t *testing.T) {
	text := "name,phone,source,city\n" +
		"Анна,,,Казань\n" +
		",,,Москва\n" +
		",555,,\n" +
		",,ads,\n"
	res, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rows)
	assert.Equal(t, 1, res.Dropped)
	require.Len(t, res.Leads, 3)
	assert.Equal(t, "Анна", res.Leads[0].Name)
	assert.Equal(t, "Казань", res.Leads[0].City)
	assert.Equal(t, "555", res.Leads[1].Phone)
	assert.Equal(t, "ads", res.Leads[2].Source)
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "  \r\n \t\n"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrEmpty, "input %q", in)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	res, err := Parse("name,phone\n")
	require.NoError(t, err)
	assert.Empty(t, res.Leads)
	assert.Zero(t, res.Rows)
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	res, err := Parse("\n\nname\r\n\r\nA\r\n   \r\nB\r\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 2)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, "B", res.Leads[1].Name)
}

func TestParse_HeaderFolding(t *testing.T) {
	text := "\"ВРЕМЯ\", Ключевые Слова ,UTM Source,Почта,Кол-во наж фильтар,Unknown Col\n" +
		"10:00,диван купить,google,a@b.c,7,zzz\n" +
		"11:00,,,,,\n"
	res, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, res.Leads, 0, "no identity columns so everything is dropped")
	assert.Equal(t, 2, res.Dropped)
	assert.Equal(t, []string{"time", "keywords", "utm_source", "email", "micro_clicks"}, res.Columns)
	assert.Equal(t, []string{"unknown col"}, res.Unknown)
}

func TestParse_NumericColumns(t *testing.T) {
	text := "source,сумма,расход,micro_clicks\n" +
		"a,\"1 500,50\",200,3\n" +
		"b,n/a,,x\n" +
		"c,0,0,0\n"
	res, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, res.Leads, 3)

	a := res.Leads[0]
	require.NotNil(t, a.Amount)
	assert.InDelta(t, 1500.5, *a.Amount, 1e-9)
	require.NotNil(t, a.Spend)
	assert.Equal(t, 200.0, *a.Spend)
	require.NotNil(t, a.MicroClicks)
	assert.Equal(t, int64(3), *a.MicroClicks)

	b := res.Leads[1]
	assert.Nil(t, b.Amount, "unparseable amount is absent")
	assert.Nil(t, b.Spend)
	assert.Nil(t, b.MicroClicks)

	c := res.Leads[2]
	require.NotNil(t, c.Amount)
	assert.Equal(t, 0.0, *c.Amount)
}

func TestParse_QuotedCommas(t *testing.T) {
	res, err := Parse("name,company,source\n\"Иванов, Иван\",\"ООО \"\"Ромашка\"\"\",site\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 1)
	assert.Equal(t, "Иванов, Иван", res.Leads[0].Name)
	assert.Equal(t, `ООО "Ромашка"`, res.Leads[0].Company)
	assert.Equal(t, "site", res.Leads[0].Source)
}

func TestParse_SemicolonExport(t *testing.T) {
	res, err := Parse("Имя;Телефон;Город\nОльга;+7911;Пермь\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 1)
	assert.Equal(t, "Ольга", res.Leads[0].Name)
	assert.Equal(t, "Пермь", res.Leads[0].City)
}

func TestParse_ShortAndLongRows(t *testing.T) {
	res, err := Parse("name,phone\nA\nB,1,extra,cells\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 2)
	assert.Equal(t, "A", res.Leads[0].Name)
	assert.Empty(t, res.Leads[0].Phone)
	assert.Equal(t, "1", res.Leads[1].Phone)
}

func TestParse_DuplicateHeaderLastNonEmptyWins(t *testing.T) {
	res, err := Parse("name,имя\nfirst,second\nonly,\n")
	require.NoError(t, err)
	require.Len(t, res.Leads, 2)
	assert.Equal(t, "second", res.Leads[0].Name)
	assert.Equal(t, "only", res.Leads[1].Name)
	assert.Equal(t, []string{"name"}, res.Columns)
}

func TestDecode_UTF8WithBOM(t *testing.T) {
	text, err := Decode(append([]byte{0xEF, 0xBB, 0xBF}, []byte("Имя\nИван\n")...))
	require.NoError(t, err)
	assert.Equal(t, "Имя\nИван\n", text)
}

func TestDecode_Windows1251(t *testing.T) {
	enc, err := charmap.Windows1251.NewEncoder().String("Имя,Телефон\nИван,123\n")
	require.NoError(t, err)

	res, err := ParseBytes([]byte(enc))
	require.NoError(t, err)
	require.Len(t, res.Leads, 1)
	assert.Equal(t, "Иван", res.Leads[0].Name)
	assert.Equal(t, "123", res.Leads[0].Phone)
}

func TestDecode_UTF16(t *testing.T) {
	enc, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String("Источник\nyandex\n")
	require.NoError(t, err)

	res, err := ParseBytes([]byte(enc))
	require.NoError(t, err)
	require.Len(t, res.Leads, 1)
	assert.Equal(t, "yandex", res.Leads[0].Source)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte("  \n "))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte{'P', 'K', 0x03, 0x04, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrNotText)
}
