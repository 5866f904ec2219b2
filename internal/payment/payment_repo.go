package payment

import "gorm.io/gorm"

// PaymentRepository defines data operations for tournament payment methods.
type PaymentRepository interface {
	CreateMethod(tournamentID uint, req *CreatePaymentMethodRequest) (*PaymentMethod, error)
	GetMethodByID(tournamentID, methodID uint) (*PaymentMethod, error)
	GetMethodsByTournament(tournamentID uint, enabledOnly bool) ([]PaymentMethod, error)
	UpdateMethod(tournamentID, methodID uint, req *UpdatePaymentMethodRequest) (*PaymentMethod, error)
	DeleteMethod(tournamentID, methodID uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateMethod(tournamentID uint, req *CreatePaymentMethodRequest) (*PaymentMethod, error) {
	method := &PaymentMethod{
		TournamentID:  tournamentID,
		Label:         req.Label,
		Type:          req.Type,
		UPIID:         req.UPIID,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IFSCCode:      req.IFSCCode,
		QRImage:       req.QRImage,
		Instructions:  req.Instructions,
		Enabled:       true,
		SortOrder:     req.SortOrder,
	}
	if err := r.db.Create(method).Error; err != nil {
		return nil, err
	}
	return method, nil
}

func (r *paymentRepository) GetMethodByID(tournamentID, methodID uint) (*PaymentMethod, error) {
	var method PaymentMethod
	if err := r.db.Where("tournament_id = ?", tournamentID).First(&method, methodID).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *paymentRepository) GetMethodsByTournament(tournamentID uint, enabledOnly bool) ([]PaymentMethod, error) {
	var methods []PaymentMethod
	query := r.db.Where("tournament_id = ?", tournamentID)
	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}
	if err := query.Order("sort_order asc, id asc").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *paymentRepository) UpdateMethod(tournamentID, methodID uint, req *UpdatePaymentMethodRequest) (*PaymentMethod, error) {
	method, err := r.GetMethodByID(tournamentID, methodID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		method.Label = *req.Label
	}
	if req.Type != nil {
		method.Type = *req.Type
	}
	if req.UPIID != nil {
		method.UPIID = *req.UPIID
	}
	if req.AccountName != nil {
		method.AccountName = *req.AccountName
	}
	if req.AccountNumber != nil {
		method.AccountNumber = *req.AccountNumber
	}
	if req.IFSCCode != nil {
		method.IFSCCode = *req.IFSCCode
	}
	if req.QRImage != nil {
		method.QRImage = *req.QRImage
	}
	if req.Instructions != nil {
		method.Instructions = *req.Instructions
	}
	if req.Enabled != nil {
		method.Enabled = *req.Enabled
	}
	if req.SortOrder != nil {
		method.SortOrder = *req.SortOrder
	}

	if err := r.db.Save(method).Error; err != nil {
		return nil, err
	}
	return method, nil
}

func (r *paymentRepository) DeleteMethod(tournamentID, methodID uint) error {
	res := r.db.Where("tournament_id = ?", tournamentID).Delete(&PaymentMethod{}, methodID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
