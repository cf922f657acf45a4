//go:build unit

package commands_test

import (
	"context"
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/commands"
	"studio-booking/tests/common/builder"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRepo     *commandsmock.MockBookingRepository
	mockCalendar *commandsmock.MockCalendarGateway
	mockQueries  *queriesmock.MockBookingQueries
	cmds         commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockCalendar = commandsmock.NewMockCalendarGateway(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.cmds = commands.NewBookingCommands(s.mockRepo, s.mockCalendar, s.mockQueries)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: persists and returns the stored view", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		view := builder.NewBookingBuilder().BuildView()
		bookingID := view.ID

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(view, nil).Times(1)

		result, err := s.cmds.CreateBooking(ctx, booking.KindStudio, req)
		s.NoError(err)
		s.Equal(view, result)
	})

	s.Run("error: total mismatch rejected before any persistence", func() {
		req := builder.NewBookingBuilder().WithTotals(20000, 19900).BuildCreateRequestDTO()

		result, err := s.cmds.CreateBooking(ctx, booking.KindStudio, req)
		s.Nil(result)
		s.ErrorIs(err, commands.ErrTotalMismatch)
	})

	s.Run("error: invalid start date is a domain validation error", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.StartDate = "03/14/2026"

		result, err := s.cmds.CreateBooking(ctx, booking.KindStudio, req)
		s.Nil(result)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: repository failure surfaces as database error", func() {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", context.DeadlineExceeded)).Times(1)

		result, err := s.cmds.CreateBooking(ctx, booking.KindStudio, req)
		s.Nil(result)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	ctx := context.Background()

	s.Run("success: booking without calendar event is just deleted", func() {
		entity := builder.NewBookingBuilder().BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)
		s.mockRepo.EXPECT().Delete(gomock.Any(), entity.ID(), booking.KindStudio).
			Return(nil).Times(1)

		s.NoError(s.cmds.CancelBooking(ctx, booking.KindStudio, entity.ID()))
	})

	s.Run("success: calendar event removed alongside the booking", func() {
		entity := builder.NewBookingBuilder().WithCalendarEventID("evt_123").BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)
		s.mockCalendar.EXPECT().DeleteEvent(gomock.Any(), "evt_123").
			Return(nil).Times(1)
		s.mockRepo.EXPECT().Delete(gomock.Any(), entity.ID(), booking.KindStudio).
			Return(nil).Times(1)

		s.NoError(s.cmds.CancelBooking(ctx, booking.KindStudio, entity.ID()))
	})

	s.Run("success: calendar delete failure never blocks the deletion", func() {
		entity := builder.NewBookingBuilder().WithCalendarEventID("evt_123").BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)
		s.mockCalendar.EXPECT().DeleteEvent(gomock.Any(), "evt_123").
			Return(context.DeadlineExceeded).Times(1)
		s.mockRepo.EXPECT().Delete(gomock.Any(), entity.ID(), booking.KindStudio).
			Return(nil).Times(1)

		s.NoError(s.cmds.CancelBooking(ctx, booking.KindStudio, entity.ID()))
	})

	s.Run("error: unknown id reports not found", func() {
		id := uuid.New()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("no rows", context.Canceled, infra.KindNotFound)).Times(1)

		err := s.cmds.CancelBooking(ctx, booking.KindStudio, id)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: kind mismatch reports not found", func() {
		entity := builder.NewBookingBuilder().AsService().BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).
			Return(entity, nil).Times(1)

		err := s.cmds.CancelBooking(ctx, booking.KindStudio, entity.ID())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
