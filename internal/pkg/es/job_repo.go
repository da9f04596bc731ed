package es

import (
	"CareerBridge/internal/pkg/consts"
	"CareerBridge/internal/pkg/util"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type JobRepo interface {
	SearchJobs(ctx context.Context, queryText string, from, size int) ([]*JobES, error)
	IndexJob(ctx context.Context, job *JobES) error
	DeleteJob(ctx context.Context, id uint64) error
}

type JobRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewJobRepo(client *elasticsearch.TypedClient) JobRepo {
	return &JobRepoImpl{client: client}
}

// SearchJobs 在标题、公司、描述、技能上做全文检索，只返回 Active 岗位
func (s *JobRepoImpl) SearchJobs(ctx context.Context, queryText string, from, size int) ([]*JobES, error) {
	if from >= MaxSearchDepth {
		return []*JobES{}, nil
	}
	if from+size > MaxSearchDepth {
		size = MaxSearchDepth - from
	}

	statusFilter := []types.Query{{
		Term: map[string]types.TermQuery{
			"status": {Value: consts.JobStatusActive},
		},
	}}

	req := s.client.Search().Index(JobIndex).From(from).Size(size)

	if queryText == "" {
		req.Query(&types.Query{Bool: &types.BoolQuery{Filter: statusFilter}}).
			Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortorder.Desc},
			}})
		return s.executeSearch(ctx, req)
	}

	req.Query(&types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{
				{
					MultiMatch: &types.MultiMatchQuery{
						Query:  queryText,
						Fields: []string{"title^3", "skills^2", "company", "description"},
						Boost:  util.PtrFloat32(2.0),
					},
				},
				{
					MultiMatch: &types.MultiMatchQuery{
						Query:     queryText,
						Fields:    []string{"title", "skills"},
						Fuzziness: util.PtrStr("AUTO"),
						Boost:     util.PtrFloat32(0.5),
					},
				},
			},
			MinimumShouldMatch: 1,
			Filter:             statusFilter,
		},
	})

	return s.executeSearch(ctx, req)
}

func (s *JobRepoImpl) IndexJob(ctx context.Context, job *JobES) error {
	docID := strconv.FormatUint(job.ID, 10)
	_, err := s.client.Index(JobIndex).
		Id(docID).
		Document(job).
		Do(ctx)
	return err
}

func (s *JobRepoImpl) DeleteJob(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(JobIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *JobRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*JobES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*JobES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var job JobES
		if err = json.Unmarshal(hit.Source_, &job); err != nil {
			continue
		}
		results = append(results, &job)
	}
	return results, nil
}
