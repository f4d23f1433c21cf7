package booking

import (
	"testing"

	"courtcredits/models"
	"courtcredits/services/catalog"

	"github.com/stretchr/testify/suite"
)

type segmentationTestSuite struct {
	suite.Suite
	snap *catalog.Snapshot
}

func TestSegmentationSuite(t *testing.T) {
	suite.Run(t, new(segmentationTestSuite))
}

func (s *segmentationTestSuite) SetupTest() {
	s.snap = catalog.Default(models.FallbackDefaultCourtType)
}

func request(location, courtType string, day models.Weekday, start, end string) models.BookingRequest {
	return models.BookingRequestInput{
		DayOfWeek:     day.String(),
		CourtLocation: location,
		CourtType:     courtType,
		SessionStart:  start,
		SessionEnd:    end,
	}.ToRequest()
}

func (s *segmentationTestSuite) lines(req models.BookingRequest) []string {
	segments, err := Segment(s.snap, req)
	s.Require().NoError(err)
	return FormatLines(segments)
}

func (s *segmentationTestSuite) TestWorkedExamples() {
	testCases := []struct {
		name     string
		req      models.BookingRequest
		expected []string
	}{
		{
			name:     "boundary crossing weekday",
			req:      request("PBA Malaga", "", models.Monday, "16:00", "18:00"),
			expected: []string{"1x $19.00", "1x $29.00"},
		},
		{
			name:     "weekend uniform rate with half hour",
			req:      request("PBA Canningvale", "Hebat Court", models.Saturday, "09:00", "10:30"),
			expected: []string{"1x $26.00", "1x $13.00"},
		},
		{
			name:     "whole day band",
			req:      request("PBA Malaga", "", models.Sunday, "09:00", "12:00"),
			expected: []string{"3x $29.00"},
		},
		{
			name:     "half hours on both sides of the boundary",
			req:      request("PBA Canningvale", "Super Court", models.Tuesday, "15:30", "18:30"),
			expected: []string{"1x $19.00", "1x $9.50", "1x $29.00", "1x $14.50"},
		},
		{
			name:     "half hour only",
			req:      request("PBA Canningvale", "Hebat Court", models.Friday, "10:00", "10:30"),
			expected: []string{"1x $8.00"},
		},
		{
			name:     "court type ignored at none location",
			req:      request("PBA Malaga", "Hebat Court", models.Wednesday, "17:00", "19:00"),
			expected: []string{"2x $29.00"},
		},
		{
			name:     "unrecognized court type uses default",
			req:      request("PBA Canningvale", "Clay", models.Monday, "10:00", "11:00"),
			expected: []string{"1x $19.00"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.lines(tc.req))
		})
	}
}

func (s *segmentationTestSuite) TestInvalidAndIncompleteYieldEmpty() {
	testCases := []struct {
		name string
		req  models.BookingRequest
	}{
		{name: "end equals start", req: request("PBA Malaga", "", models.Monday, "16:00", "16:00")},
		{name: "end before start", req: request("PBA Malaga", "", models.Monday, "18:00", "16:00")},
		{name: "missing court type", req: request("PBA Canningvale", "", models.Monday, "10:00", "11:00")},
		{name: "unknown location", req: request("Nowhere", "", models.Monday, "10:00", "11:00")},
		{name: "missing end", req: request("PBA Malaga", "", models.Monday, "10:00", "")},
		{name: "missing day", req: request("PBA Malaga", "", 0, "10:00", "11:00")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for i := 0; i < 3; i++ {
				segments, err := Segment(s.snap, tc.req)
				s.Require().NoError(err)
				s.NotNil(segments)
				s.Empty(segments)
			}
		})
	}
}

func (s *segmentationTestSuite) TestRejectPolicy() {
	strict := catalog.Default(models.FallbackReject)
	segments, err := Segment(strict, request("PBA Canningvale", "Clay", models.Monday, "10:00", "11:00"))
	s.Require().NoError(err)
	s.Empty(segments)
}

func (s *segmentationTestSuite) TestDurationIsConserved() {
	for _, day := range models.AllWeekdays {
		for start := models.Minute(0); start < models.MinutesPerDay; start += models.SlotStep {
			for end := start + models.SlotStep; end <= models.MinutesPerDay; end += 90 {
				for _, courtType := range []string{"Hebat Court", "Super Court"} {
					req := request("PBA Canningvale", courtType, day, start.Clock(), end.Clock())
					segments, err := Segment(s.snap, req)
					s.Require().NoError(err)
					s.Equal(int(end-start), BilledMinutes(segments), "%s %s-%s", day, start, end)

					total := Total(segments)
					for _, seg := range segments {
						s.True(seg.UnitRate.IsPositive())
					}
					s.False(total.IsNegative())
				}
			}
		}
	}
}

func (s *segmentationTestSuite) TestIdempotent() {
	req := request("PBA Canningvale", "Super Court", models.Thursday, "16:30", "19:00")
	first, err := Segment(s.snap, req)
	s.Require().NoError(err)
	second, err := Segment(s.snap, req)
	s.Require().NoError(err)
	s.Equal(FormatLines(first), FormatLines(second))
	s.True(Total(first).Equal(Total(second)))
}

func (s *segmentationTestSuite) TestMisalignedIsReported() {
	req := request("PBA Malaga", "", models.Monday, "09:15", "10:00")
	segments, err := Segment(s.snap, req)
	s.ErrorIs(err, ErrMisaligned)
	s.Nil(segments)
}

func (s *segmentationTestSuite) TestTotalAndJoin() {
	segments, err := Segment(s.snap, request("PBA Malaga", "", models.Monday, "16:00", "18:00"))
	s.Require().NoError(err)
	s.Equal("48.00", Total(segments).StringFixed(2))
	s.Equal("1x $19.00\n1x $29.00", JoinLines(FormatLines(segments)))
	s.Equal("", JoinLines(nil))
}
