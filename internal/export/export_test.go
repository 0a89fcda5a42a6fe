package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/okian/standings/internal/adapters/source"
	"github.com/okian/standings/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func records() []model.PlayerRecord {
	return []model.PlayerRecord{
		{Rank: 1, Player: "Alpha", RatingMu: 31.123456789012345, RatingSigma: 0.1, Wins: 9, Draws: 1, Losses: 2, Games: 12, WinRate: 0.75},
		{Rank: 2, Player: "Beta", RatingMu: 28, RatingSigma: 1.0 / 3.0, Wins: 1, Draws: 0, Losses: 2, Games: 3, WinRate: 1.0 / 3.0},
		{Rank: 3, Player: "Gamma", RatingMu: 1e-7, RatingSigma: 2.5, Wins: 0, Draws: 0, Losses: 0, Games: 0, WinRate: 0},
	}
}

func TestRows(t *testing.T) {
	Convey("Given records", t, func() {
		rows := Rows(records())

		Convey("Then each row follows the record field order", func() {
			So(rows, ShouldHaveLength, 3)
			So(rows[0], ShouldResemble, []string{"1", "Alpha", "31.123456789012345", "0.1", "9", "1", "2", "12", "0.75"})
			So(rows[1][8], ShouldEqual, "0.3333333333333333")
		})
	})
}

func TestWriteCSV(t *testing.T) {
	Convey("Given records written as CSV", t, func() {
		var buf bytes.Buffer
		So(WriteCSV(&buf, records()), ShouldBeNil)

		Convey("Then the header comes first and model info is absent", func() {
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 4)
			So(lines[0], ShouldEqual, "Rank,Player,Rating_Mu,Rating_Sigma,Wins,Draws,Losses,Games,Win_Rate")
			So(buf.String(), ShouldNotContainSubstring, "agent0")
		})

		Convey("Then decoding it reproduces the records exactly", func() {
			back, err := source.DecodeResults(&buf)
			So(err, ShouldBeNil)
			So(cmp.Diff(records(), back), ShouldBeEmpty)
		})
	})

	Convey("Given records with NaN fields", t, func() {
		recs := records()
		recs[0].WinRate = math.NaN()
		var buf bytes.Buffer
		So(WriteCSV(&buf, recs), ShouldBeNil)

		Convey("Then the round trip keeps the NaN", func() {
			back, err := source.DecodeResults(&buf)
			So(err, ShouldBeNil)
			So(cmp.Diff(recs, back, cmpopts.EquateNaNs()), ShouldBeEmpty)
		})
	})

	Convey("Given a player name containing a comma", t, func() {
		recs := records()[:1]
		recs[0].Player = "Alpha, the first"
		var buf bytes.Buffer
		So(WriteCSV(&buf, recs), ShouldBeNil)

		Convey("Then it is quoted and survives the round trip", func() {
			back, err := source.DecodeResults(&buf)
			So(err, ShouldBeNil)
			So(back[0].Player, ShouldEqual, "Alpha, the first")
		})
	})
}

func TestWriteJSON(t *testing.T) {
	Convey("Given records and a model lookup", t, func() {
		lookup := func(player string) model.ModelInfo {
			if player == "Alpha" {
				return model.ModelInfo{Agent0: "acme - sonic-7", Agent1: "acme - sonic-mini"}
			}
			return model.ModelInfo{Agent0: model.NotAvailable, Agent1: model.NotAvailable}
		}
		var buf bytes.Buffer
		So(WriteJSON(&buf, records(), lookup), ShouldBeNil)

		Convey("Then it is indented with two spaces", func() {
			So(buf.String(), ShouldStartWith, "[\n  {\n    \"rank\": 1,")
		})

		Convey("Then each row nests its model info", func() {
			var got []map[string]any
			So(json.Unmarshal(buf.Bytes(), &got), ShouldBeNil)
			So(got, ShouldHaveLength, 3)
			So(got[0]["model"], ShouldResemble, map[string]any{"agent0": "acme - sonic-7", "agent1": "acme - sonic-mini"})
			So(got[1]["model"], ShouldResemble, map[string]any{"agent0": "N/A", "agent1": "N/A"})
			So(got[0]["rating_mu"], ShouldEqual, 31.123456789012345)
		})
	})

	Convey("Given a nil lookup and an empty list", t, func() {
		var buf bytes.Buffer
		So(WriteJSON(&buf, nil, nil), ShouldBeNil)

		Convey("Then an empty array is written", func() {
			So(strings.TrimSpace(buf.String()), ShouldEqual, "[]")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Given the format dispatcher", t, func() {
		var buf bytes.Buffer

		Convey("Then csv and json are accepted", func() {
			So(Write(&buf, FormatCSV, records(), nil), ShouldBeNil)
			So(Write(&buf, FormatJSON, records(), nil), ShouldBeNil)
			So(FileName(FormatCSV), ShouldEqual, CSVFileName)
			So(FileName(FormatJSON), ShouldEqual, JSONFileName)
		})

		Convey("Then other formats fail", func() {
			err := Write(&buf, Format("xml"), records(), nil)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
		})
	})
}
