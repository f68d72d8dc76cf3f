package taxdecl

import (
	"context"
	"io"
)

type DeclarationService interface {
	CreateDeclaration(ctx context.Context, req CreateDeclarationRequest) (DeclarationResponse, error)
	GetDeclaration(ctx context.Context, id int64) (DeclarationResponse, error)
	ListDeclarations(ctx context.Context, filter DeclarationFilter) ([]DeclarationResponse, error)
	UpdateDeclaration(ctx context.Context, id int64, req UpdateDeclarationRequest, callerID int64) (DeclarationResponse, error)
	Approve(ctx context.Context, req ApproveRequest, reviewerID int64) (int64, error)
	ImportDeclarations(ctx context.Context, workbook io.Reader) (int, error)
	ExportDeclarations(ctx context.Context, filter DeclarationFilter) ([]byte, error)
}
