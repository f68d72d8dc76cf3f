package taxdecl

import "context"

type DeclarationRepository interface {
	Create(ctx context.Context, declaration Declaration) (Declaration, error)
	GetByID(ctx context.Context, id int64) (DeclarationWithEmployee, error)
	List(ctx context.Context, filter DeclarationFilter) ([]DeclarationWithEmployee, error)
	Update(ctx context.Context, id int64, declaration Declaration) error
	UpdateStatus(ctx context.Context, ids []int64, status Status, reviewedBy int64) (int64, error)
}
