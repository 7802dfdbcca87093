package school

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tuition.app/billing/mocks/repository/school_repo"
	"tuition.app/billing/repository/pgconv"
	"tuition.app/billing/repository/schools"
)

var schoolID = uuid.MustParse("8f1d7b5e-2c41-4a8e-9b7a-1f0e6a3c2d10")

func TestListActiveSchools(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := school_repo.NewMockQuerier(ctrl)
	business := &business{schoolRepo: mockRepo}

	t.Run("happy_case", func(t *testing.T) {
		mockRepo.EXPECT().ListActiveSchools(gomock.Any()).Return([]schools.School{
			{ID: pgconv.UUID(schoolID), Name: "Harapan", IsActive: true},
		}, nil)

		result, err := business.ListActiveSchools(context.Background())

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, schoolID, result[0].ID)
		assert.Equal(t, "Harapan", result[0].Name)
	})

	t.Run("database_error", func(t *testing.T) {
		mockRepo.EXPECT().ListActiveSchools(gomock.Any()).Return(nil, errors.New("boom"))

		result, err := business.ListActiveSchools(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to list schools")
	})
}

func TestGetActiveSchoolYear(t *testing.T) {
	yearID := uuid.New()
	startsOn := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		mockReturn    schools.SchoolYear
		mockError     error
		expectedError error
		expectedMsg   string
	}{
		{
			name: "happy_case",
			mockReturn: schools.SchoolYear{
				ID:       pgconv.UUID(yearID),
				SchoolID: pgconv.UUID(schoolID),
				Name:     "2024/2025",
				StartsOn: pgconv.Date(startsOn),
				EndsOn:   pgconv.Date(startsOn.AddDate(1, 0, -1)),
				IsActive: true,
			},
		},
		{
			name:          "no_active_year",
			mockError:     pgx.ErrNoRows,
			expectedError: ErrNoActiveSchoolYear,
		},
		{
			name:        "database_error",
			mockError:   errors.New("boom"),
			expectedMsg: "failed to get active school year",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := school_repo.NewMockQuerier(ctrl)
			business := &business{schoolRepo: mockRepo}

			mockRepo.EXPECT().GetActiveSchoolYear(gomock.Any(), pgconv.UUID(schoolID)).Return(tc.mockReturn, tc.mockError)

			result, err := business.GetActiveSchoolYear(context.Background(), schoolID)

			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, result)
			case tc.expectedMsg != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedMsg)
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, yearID, result.ID)
				assert.Equal(t, "2024/2025", result.Name)
				assert.Equal(t, startsOn, result.StartsOn)
			}
		})
	}
}

func TestListStudentsByIDs(t *testing.T) {
	known := uuid.New()
	unknown := uuid.New()

	testCases := []struct {
		name        string
		ids         []uuid.UUID
		expectCall  bool
		mockReturn  []schools.Student
		mockError   error
		expectedLen int
		expectedMsg string
	}{
		{
			name:        "unknown_ids_are_dropped",
			ids:         []uuid.UUID{known, unknown},
			expectCall:  true,
			mockReturn:  []schools.Student{{ID: pgconv.UUID(known), SchoolID: pgconv.UUID(schoolID), FullName: "Ayu"}},
			expectedLen: 1,
		},
		{
			name:        "empty_ids_skip_query",
			ids:         nil,
			expectedLen: 0,
		},
		{
			name:        "database_error",
			ids:         []uuid.UUID{known},
			expectCall:  true,
			mockError:   errors.New("boom"),
			expectedMsg: "failed to list students",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := school_repo.NewMockQuerier(ctrl)
			business := &business{schoolRepo: mockRepo}

			if tc.expectCall {
				mockRepo.EXPECT().
					ListStudentsByIDs(gomock.Any(), schools.ListStudentsByIDsParams{
						SchoolID: pgconv.UUID(schoolID),
						Ids:      pgconv.UUIDs(tc.ids),
					}).
					Return(tc.mockReturn, tc.mockError)
			}

			result, err := business.ListStudentsByIDs(context.Background(), schoolID, tc.ids)

			if tc.expectedMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedMsg)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, tc.expectedLen)
		})
	}
}

func TestListActiveStudents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := school_repo.NewMockQuerier(ctrl)
	business := &business{schoolRepo: mockRepo}
	studentID := uuid.New()

	mockRepo.EXPECT().ListActiveStudents(gomock.Any(), pgconv.UUID(schoolID)).Return([]schools.Student{
		{ID: pgconv.UUID(studentID), SchoolID: pgconv.UUID(schoolID), FullName: "Budi", IsActive: true},
	}, nil)

	result, err := business.ListActiveStudents(context.Background(), schoolID)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, studentID, result[0].ID)
	assert.Equal(t, "Budi", result[0].FullName)
}
