package domain

//region UnknownBuyerError

type UnknownBuyerError struct {
	Msg string
}

func (e *UnknownBuyerError) Error() string {
	return e.Msg
}

func (e *UnknownBuyerError) Is(target error) bool {
	_, ok := target.(*UnknownBuyerError)
	return ok
}

//endregion

//region ListingNotFoundError

type ListingNotFoundError struct {
	Msg string
}

func (e *ListingNotFoundError) Error() string {
	return e.Msg
}

func (e *ListingNotFoundError) Is(target error) bool {
	_, ok := target.(*ListingNotFoundError)
	return ok
}

//endregion

//region ListingNotAvailableError

type ListingNotAvailableError struct {
	Msg string
}

func (e *ListingNotAvailableError) Error() string {
	return e.Msg
}

func (e *ListingNotAvailableError) Is(target error) bool {
	_, ok := target.(*ListingNotAvailableError)
	return ok
}

//endregion

//region SelfPurchaseError

type SelfPurchaseError struct {
	Msg string
}

func (e *SelfPurchaseError) Error() string {
	return e.Msg
}

func (e *SelfPurchaseError) Is(target error) bool {
	_, ok := target.(*SelfPurchaseError)
	return ok
}

//endregion

//region InvalidPriceError

type InvalidPriceError struct {
	Msg string
}

func (e *InvalidPriceError) Error() string {
	return e.Msg
}

func (e *InvalidPriceError) Is(target error) bool {
	_, ok := target.(*InvalidPriceError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region StorageMoveError

type StorageMoveError struct {
	Msg string
}

func (e *StorageMoveError) Error() string {
	return e.Msg
}

func (e *StorageMoveError) Is(target error) bool {
	_, ok := target.(*StorageMoveError)
	return ok
}

//endregion

//region NothingToDeleteError

type NothingToDeleteError struct {
	Msg string
}

func (e *NothingToDeleteError) Error() string {
	return e.Msg
}

func (e *NothingToDeleteError) Is(target error) bool {
	_, ok := target.(*NothingToDeleteError)
	return ok
}

//endregion
