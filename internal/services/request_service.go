package services

import (
	"monprof_backend/internal/models"
	"monprof_backend/internal/repositories"
	"monprof_backend/internal/scoring"
	"monprof_backend/internal/services/dto"
	"monprof_backend/pkg/apperrors"
)

type RequestService interface {
	Create(parentID string, req *dto.CreateRequestRequest) (*dto.CourseRequestDTO, error)
	Update(requestID, callerID string, req *dto.UpdateRequestRequest) (*dto.CourseRequestDTO, error)
	GetByID(requestID string) (*dto.CourseRequestDTO, error)
	ListActive(filter repositories.RequestFilter) (*dto.Paginated[dto.CourseRequestDTO], error)
	ListMine(parentID string) ([]dto.CourseRequestDTO, error)
	Delete(requestID, callerID string) error
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
}

func NewRequestService(requestRepo repositories.RequestRepository, userRepo repositories.UserRepository) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// Create posts a course request and scores it against the parent's
// country threshold. The qualification label is stored with the row so
// the back-office sees what the parent was told at submission time.
func (s *RequestServiceImpl) Create(parentID string, req *dto.CreateRequestRequest) (*dto.CourseRequestDTO, error) {
	parent, err := s.userRepo.FindByID(parentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.CourseRequest{
		ParentID:    parent.ID,
		Subjects:    req.Subjects,
		Level:       req.Level,
		Quartier:    req.Quartier,
		Frequency:   req.Frequency,
		IsOnline:    req.IsOnline,
		Description: req.Description,
		BudgetRange: req.BudgetRange,
		StartTime:   req.StartTime,
		Intention:   req.Intention,
		Status:      models.RequestStatusActive,
	}
	if req.CityID != "" {
		request.CityID = &req.CityID
	}
	request.Qualification = s.qualify(request, parent.Country)

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(request.ID)
}

// Update rewrites a request. Only the posting parent may edit, and an
// edit always reactivates the request and rescores it, since the
// budget or timing may have changed.
func (s *RequestServiceImpl) Update(requestID, callerID string, req *dto.UpdateRequestRequest) (*dto.CourseRequestDTO, error) {
	request, err := s.load(requestID)
	if err != nil {
		return nil, err
	}

	if request.ParentID != callerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	request.Subjects = req.Subjects
	request.Level = req.Level
	request.Quartier = req.Quartier
	request.Frequency = req.Frequency
	request.IsOnline = req.IsOnline
	request.Description = req.Description
	request.BudgetRange = req.BudgetRange
	request.StartTime = req.StartTime
	request.Intention = req.Intention
	request.Status = models.RequestStatusActive
	if req.CityID != "" {
		request.CityID = &req.CityID
	} else {
		request.CityID = nil
	}

	var country *models.Country
	if request.Parent != nil {
		country = request.Parent.Country
	}
	request.Qualification = s.qualify(request, country)

	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.reload(request.ID)
}

func (s *RequestServiceImpl) GetByID(requestID string) (*dto.CourseRequestDTO, error) {
	request, err := s.load(requestID)
	if err != nil {
		return nil, err
	}
	result := dto.NewCourseRequestDTO(request)
	return &result, nil
}

// ListActive is the tutor-facing marketplace: active requests only.
func (s *RequestServiceImpl) ListActive(filter repositories.RequestFilter) (*dto.Paginated[dto.CourseRequestDTO], error) {
	requests, total, err := s.requestRepo.FindActive(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CourseRequestDTO, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewCourseRequestDTO(&requests[i]))
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	result := dto.NewPaginated(items, total, page, pageSize)
	return &result, nil
}

func (s *RequestServiceImpl) ListMine(parentID string) ([]dto.CourseRequestDTO, error) {
	requests, err := s.requestRepo.FindByParent(parentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CourseRequestDTO, 0, len(requests))
	for i := range requests {
		items = append(items, dto.NewCourseRequestDTO(&requests[i]))
	}
	return items, nil
}

// Delete withdraws a request. Only the posting parent may remove it;
// the back-office has its own removal path.
func (s *RequestServiceImpl) Delete(requestID, callerID string) error {
	request, err := s.load(requestID)
	if err != nil {
		return err
	}
	if request.ParentID != callerID {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.requestRepo.Delete(requestID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RequestServiceImpl) load(requestID string) (*models.CourseRequest, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) reload(requestID string) (*dto.CourseRequestDTO, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	result := dto.NewCourseRequestDTO(request)
	return &result, nil
}

func (s *RequestServiceImpl) qualify(request *models.CourseRequest, country *models.Country) string {
	return scoring.QualifyForCountry(scoring.Input{
		Budget:    request.BudgetRange,
		StartTime: request.StartTime,
		Intention: request.Intention,
	}, country)
}
