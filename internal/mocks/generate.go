package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/basetable --output domain/basetable --outpkg basetablemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/partition --output domain/partition --outpkg partitionmock --filename repository_mock.go
